package chron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearNextPrev(t *testing.T) {
	tests := []struct {
		year Year
		next Year
		prev Year
	}{
		{year: -2, next: -1, prev: -3},
		{year: -1, next: 1, prev: -2},
		{year: 1, next: 2, prev: -1},
		{year: 100, next: 101, prev: 99},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.next, tt.year.Next(), "Next of %d", tt.year)
		assert.Equal(t, tt.prev, tt.year.Prev(), "Prev of %d", tt.year)
	}
}

func TestYearString(t *testing.T) {
	assert.Equal(t, "44 BC", Year(-44).String())
	assert.Equal(t, "1509", Year(1509).String())
	assert.Equal(t, "-44", Year(-44).Decimal())
	assert.Equal(t, "1509", Year(1509).Decimal())
}

func TestYearIsValid(t *testing.T) {
	assert.False(t, Year(0).IsValid())
	assert.True(t, Year(-1).IsValid())
	assert.True(t, Year(1).IsValid())
}

func TestPeriodContains(t *testing.T) {
	p := Period{Start: -44, End: -37}
	assert.True(t, p.Contains(-44))
	assert.True(t, p.Contains(-40))
	assert.True(t, p.Contains(-37))
	assert.False(t, p.Contains(-45))
	assert.False(t, p.Contains(-36))
	assert.False(t, p.Contains(40))
}

func TestPeriodYears(t *testing.T) {
	assert.Equal(t, []Year{1509}, Period{Start: 1509, End: 1509}.Years())
	assert.Equal(t, []Year{-44, -43, -42}, Period{Start: -44, End: -42}.Years())
	assert.Equal(t, []Year{-1, 1}, Period{Start: -1, End: 1}.Years())
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "800", Period{Start: 800, End: 800}.String())
	assert.Equal(t, "1509-1547", Period{Start: 1509, End: 1547}.String())
	assert.Equal(t, "44 BC-37 BC", Period{Start: -44, End: -37}.String())
}

func TestPeriodSpan(t *testing.T) {
	assert.Equal(t, 1, Period{Start: 800, End: 800}.Span())
	assert.Equal(t, 39, Period{Start: 1509, End: 1547}.Span())
	// BC/AD crossings have no year zero
	assert.Equal(t, 2, Period{Start: -1, End: 1}.Span())
}
