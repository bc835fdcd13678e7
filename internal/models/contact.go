package models

import (
	"regexp"
	"strings"
)

// Address is the nested address block on a contact.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	Address3 string `json:"address3,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// ContactInfo is a contact as returned by the CRM.
type ContactInfo struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	AssignedTo  string  `json:"assigned_to"`
	Address     Address `json:"address"`
}

// FullName returns the contact's display name.
func (c *ContactInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ContactCreate carries the fields for a CRM contact creation.
type ContactCreate struct {
	AssignedTo           string  `json:"assigned_to,omitempty"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	CampaignID           string  `json:"campaign_id,omitempty"`
	AttorneyID           string  `json:"attorney_id,omitempty"`
	PhoneNumber          string  `json:"phone_number"`
	Address              Address `json:"address"`
	Email                string  `json:"email"`
	SocialSecurityNumber string  `json:"social_security_number,omitempty"`
	DateOfBirth          string  `json:"date_of_birth"`
	StatusID             int     `json:"statusID,omitempty"`
	StageID              int     `json:"stageID,omitempty"`
	StageLabel           string  `json:"stage_label,omitempty"`
	StatusLabel          string  `json:"status_label,omitempty"`
}

// CreditReport is the parsed credit report block for a contact.
type CreditReport struct {
	Score                      int      `json:"score"`
	Factors                    []string `json:"factors"`
	RevolvingCreditUtilization string   `json:"revolvingCreditUtilization"`
}

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// Matches dates like "March 3rd 1980" or "Jan 12 1975".
	verboseDateRe = regexp.MustCompile(`^(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s(\d{1,2})(?:st|nd|rd|th)?\s(\d{4})$`)
)

var monthNumbers = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04", "Jun": "06",
	"Jul": "07", "Aug": "08", "Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// FormatDateOfBirth normalizes a date of birth to "YYYY-MM-DD".
// ISO-formatted input passes through unchanged; verbose dates like
// "March 3rd 1980" are converted. Anything else yields "".
func FormatDateOfBirth(dateOfBirth string) string {
	if isoDateRe.MatchString(dateOfBirth) {
		return dateOfBirth
	}

	match := verboseDateRe.FindStringSubmatch(dateOfBirth)
	if match == nil {
		return ""
	}

	month := monthNumbers[match[1]]
	day := match[2]
	if len(day) == 1 {
		day = "0" + day
	}
	return match[3] + "-" + month + "-" + day
}

// RequiredContactFields are the request fields that must be present
// before a contact creation is attempted.
var RequiredContactFields = []string{
	"first_name", "last_name", "address", "date_of_birth", "phone_number", "email",
}

// MissingContactFields returns the names of required fields absent from
// a creation request, joined in declaration order.
func MissingContactFields(req *ContactCreate) []string {
	var missing []string
	for _, field := range RequiredContactFields {
		switch field {
		case "first_name":
			if strings.TrimSpace(req.FirstName) == "" {
				missing = append(missing, field)
			}
		case "last_name":
			if strings.TrimSpace(req.LastName) == "" {
				missing = append(missing, field)
			}
		case "address":
			if req.Address == (Address{}) {
				missing = append(missing, field)
			}
		case "date_of_birth":
			if strings.TrimSpace(req.DateOfBirth) == "" {
				missing = append(missing, field)
			}
		case "phone_number":
			if strings.TrimSpace(req.PhoneNumber) == "" {
				missing = append(missing, field)
			}
		case "email":
			if strings.TrimSpace(req.Email) == "" {
				missing = append(missing, field)
			}
		}
	}
	return missing
}
