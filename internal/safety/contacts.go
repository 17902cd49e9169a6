package safety

import "github.com/nens2012/life-aid-nexus/internal/models"

var contacts = map[models.Language][]models.EmergencyContact{
	models.LangEnglish: {
		{Name: "Emergency Services", Number: "911"},
		{Name: "Suicide & Crisis Lifeline", Number: "988"},
		{Name: "Poison Control", Number: "1-800-222-1222"},
	},
	models.LangHindi: {
		{Name: "एम्बुलेंस", Number: "102"},
		{Name: "राष्ट्रीय आपातकालीन नंबर", Number: "112"},
		{Name: "टेली-मानस (मानसिक स्वास्थ्य)", Number: "14416"},
	},
	models.LangGujarati: {
		{Name: "એમ્બ્યુલન્સ", Number: "108"},
		{Name: "રાષ્ટ્રીય ઇમરજન્સી નંબર", Number: "112"},
		{Name: "ટેલી-માનસ (માનસિક સ્વાસ્થ્ય)", Number: "14416"},
	},
}

// Contacts returns a fresh copy of the emergency contacts for lang, falling
// back to the default language.
func Contacts(lang models.Language) []models.EmergencyContact {
	list, ok := contacts[lang]
	if !ok {
		list = contacts[models.DefaultLanguage]
	}
	return append([]models.EmergencyContact(nil), list...)
}

// PrimaryNumber is the first number to call in lang's locale.
func PrimaryNumber(lang models.Language) string {
	return Contacts(lang)[0].Number
}
