package models

import "strings"

// stateAbbreviations maps lowercased, space-stripped state names to
// their two-letter abbreviations.
var stateAbbreviations = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"newhampshire": "NH", "newjersey": "NJ", "newmexico": "NM", "newyork": "NY",
	"northcarolina": "NC", "northdakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "puertorico": "PR", "rhodeisland": "RI",
	"southcarolina": "SC", "southdakota": "SD", "tennessee": "TN", "texas": "TX",
	"utah": "UT", "vermont": "VT", "virginia": "VA", "washington": "WA",
	"westvirginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"districtofcolumbia": "DC",
}

// qualifiedStates is the allow-list of states eligible for enrollment.
var qualifiedStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"DE": true, "GA": true, "ID": true, "IL": true, "IA": true, "LA": true,
	"MA": true, "NV": true, "NJ": true, "OH": true, "PA": true, "PR": true,
	"RI": true, "TN": true, "UT": true, "VA": true, "WI": true, "WY": true,
	"FL": true, "IN": true, "KY": true, "ME": true, "MD": true, "MI": true,
	"MN": true, "MS": true, "MO": true, "MT": true, "NE": true, "NH": true,
	"NM": true, "NY": true, "NC": true, "OK": true, "SD": true, "TX": true,
	"DC": true,
}

// StateAbbreviation normalizes a full state name (case-insensitive,
// spaces ignored) or a two-letter code to its uppercase abbreviation.
// Unknown full names yield "".
func StateAbbreviation(state string) string {
	trimmed := strings.TrimSpace(state)
	if len(trimmed) > 2 {
		key := strings.ToLower(strings.ReplaceAll(trimmed, " ", ""))
		return stateAbbreviations[key]
	}
	return strings.ToUpper(trimmed)
}

// IsQualifiedState reports whether an abbreviation is on the allow-list.
func IsQualifiedState(abbreviation string) bool {
	return qualifiedStates[abbreviation]
}
