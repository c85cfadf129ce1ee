package catalog

// DefaultPlurals maps well-known title names to their display plurals.
// The table is passed into Ingest as explicit configuration; callers may
// extend or override it. Titles absent from the table display as
// themselves — see Title.PluralLabel.
func DefaultPlurals() map[string]string {
	return map[string]string{
		"Pope":                   "Popes",
		"Antipope":               "Antipopes",
		"English Monarch":        "English Monarchs",
		"Scottish Monarch":       "Scottish Monarchs",
		"Spanish Monarch":        "Spanish Monarchs",
		"French Monarch":         "French Monarchs",
		"US president":           "US presidents",
		"British Prime Minister": "British Prime Ministers",
		"King of the West Franks": "Kings of the West Franks",
		"King of the East Franks": "Kings of the East Franks",
		"King of the Franks":      "Kings of the Franks",
		"King of France":          "Kings of France",
		"King of the Lombards":    "Kings of the Lombards",
		"King of Italy":           "Kings of Italy",
		"French Government":       "French Governments",
		"French Emperor":          "French Emperors",
		"French President":        "French Presidents",
		"Byzantine Emperor":       "Byzantine Emperors",
		"Emperor of China":        "Emperors of China",
		"Holy Roman Emperor":      "Holy Roman Emperors",
		"Emperor of the Carolingian Empire": "Emperors of the Carolingian Empire",
		"Roman Emperor":           "Roman Emperors",
		"Roman Emperor (East)":    "Roman Emperors (East)",
		"Roman Emperor (West)":    "Roman Emperors (West)",
		"Russian Emperor":         "Russian Emperors",
		"Prince of Moscow":        "Princes of Moscow",
		"Tsar of Russia":          "Tsars of Russia",
		"Chairman of the Communist Party of the Soviet Union": "Chairmen of the Communist Party of the Soviet Union",
		"Russian President":   "Russian Presidents",
		"Neapolitan ruler":    "Neapolitan rulers",
		"Emperor of Austria":  "Emperors of Austria",
		"Roman Consul":        "Roman Consuls",
		"Consular Tribune":    "Consular Tribunes",
		"Decemvir":            "Decemviri",
		"Dictator":            "Dictators",
	}
}
