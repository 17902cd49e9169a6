package extract

import (
	"fmt"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

// Term maps a canonical id to its surface forms per language. Surfaces are
// lowercase.
type Term[T ~string] struct {
	ID       T
	Surfaces map[models.Language][]string
}

type surfaces = map[models.Language][]string

// Lexicon is the immutable keyword table consulted by the extractor.
type Lexicon struct {
	Symptoms  []Term[models.SymptomID]
	Intents   []Term[models.IntentID]
	History   []Term[models.HistoryID]
	Modifiers []Term[models.Modifier]
	Genders   []Term[models.Gender]
}

// Validate checks that every term carries surfaces for every supported
// language.
func (l *Lexicon) Validate() error {
	if err := validateTerms("symptom", l.Symptoms); err != nil {
		return err
	}
	if err := validateTerms("intent", l.Intents); err != nil {
		return err
	}
	if err := validateTerms("history", l.History); err != nil {
		return err
	}
	if err := validateTerms("modifier", l.Modifiers); err != nil {
		return err
	}
	return validateTerms("gender", l.Genders)
}

func validateTerms[T ~string](kind string, terms []Term[T]) error {
	seen := make(map[T]bool, len(terms))
	for _, t := range terms {
		if seen[t.ID] {
			return fmt.Errorf("%s %q declared twice", kind, t.ID)
		}
		seen[t.ID] = true
		for _, lang := range models.SupportedLanguages {
			if len(t.Surfaces[lang]) == 0 {
				return fmt.Errorf("%s %q has no %s surfaces", kind, t.ID, lang)
			}
		}
	}
	return nil
}

// DefaultLexicon returns the built-in table. The returned value is shared and
// must not be modified.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

var defaultLexicon = &Lexicon{
	Symptoms: []Term[models.SymptomID]{
		{models.SymptomFever, surfaces{
			models.LangEnglish:  {"fever", "feverish", "high temperature"},
			models.LangHindi:    {"बुखार", "ज्वर"},
			models.LangGujarati: {"તાવ"},
		}},
		{models.SymptomCough, surfaces{
			models.LangEnglish:  {"cough"},
			models.LangHindi:    {"खांसी", "खाँसी"},
			models.LangGujarati: {"ખાંસી", "ઉધરસ"},
		}},
		{models.SymptomHeadache, surfaces{
			models.LangEnglish:  {"headache", "head ache", "migraine", "head hurts"},
			models.LangHindi:    {"सिरदर्द", "सिर दर्द", "सर दर्द", "सिर में दर्द"},
			models.LangGujarati: {"માથાનો દુખાવો", "માથું દુખે", "માથાનો દુઃખાવો"},
		}},
		{models.SymptomNausea, surfaces{
			models.LangEnglish:  {"nausea", "nauseous", "vomit", "queasy", "throwing up"},
			models.LangHindi:    {"मतली", "उल्टी", "जी मिचला"},
			models.LangGujarati: {"ઉબકા", "ઉલટી"},
		}},
		{models.SymptomDizziness, surfaces{
			models.LangEnglish:  {"dizzy", "dizziness", "lightheaded", "light-headed", "vertigo"},
			models.LangHindi:    {"चक्कर"},
			models.LangGujarati: {"ચક્કર"},
		}},
		{models.SymptomFatigue, surfaces{
			models.LangEnglish:  {"fatigue", "tired", "exhausted", "weakness"},
			models.LangHindi:    {"थकान", "कमजोरी", "कमज़ोरी"},
			models.LangGujarati: {"થાક", "નબળાઈ"},
		}},
		{models.SymptomSoreThroat, surfaces{
			models.LangEnglish:  {"sore throat", "throat pain", "scratchy throat"},
			models.LangHindi:    {"गले में दर्द", "गले में खराश", "गला खराब"},
			models.LangGujarati: {"ગળામાં દુખાવો", "ગળું દુખે", "ગળામાં ખરાશ"},
		}},
		{models.SymptomDiarrhea, surfaces{
			models.LangEnglish:  {"diarrhea", "diarrhoea", "loose motion", "loose stool"},
			models.LangHindi:    {"दस्त"},
			models.LangGujarati: {"ઝાડા"},
		}},
		{models.SymptomStomachPain, surfaces{
			models.LangEnglish:  {"stomach pain", "stomach ache", "stomachache", "abdominal pain", "tummy ache"},
			models.LangHindi:    {"पेट दर्द", "पेट में दर्द"},
			models.LangGujarati: {"પેટમાં દુખાવો", "પેટ દુખે"},
		}},
		{models.SymptomMenstrualCramps, surfaces{
			models.LangEnglish:  {"period pain", "period cramp", "menstrual cramp", "menstrual pain"},
			models.LangHindi:    {"मासिक धर्म में दर्द", "पीरियड दर्द", "पीरियड्स में दर्द"},
			models.LangGujarati: {"માસિકમાં દુખાવો", "પીરિયડમાં દુખાવો"},
		}},
		{models.SymptomInsomnia, surfaces{
			models.LangEnglish:  {"insomnia", "can't sleep", "cannot sleep", "trouble sleeping", "sleepless"},
			models.LangHindi:    {"नींद नहीं", "अनिद्रा"},
			models.LangGujarati: {"ઊંઘ નથી", "ઊંઘ આવતી નથી", "અનિદ્રા"},
		}},
		{models.SymptomStress, surfaces{
			models.LangEnglish:  {"stress", "anxious", "anxiety"},
			models.LangHindi:    {"तनाव", "चिंता"},
			models.LangGujarati: {"તણાવ", "ચિંતા"},
		}},
		{models.SymptomRash, surfaces{
			models.LangEnglish:  {"rash", "hives"},
			models.LangHindi:    {"दाने", "चकत्ते"},
			models.LangGujarati: {"ફોલ્લી", "ચકામા"},
		}},
		{models.SymptomVisionChange, surfaces{
			models.LangEnglish:  {"blurred vision", "blurry vision", "vision loss", "double vision"},
			models.LangHindi:    {"धुंधला दिख", "दिखाई नहीं दे"},
			models.LangGujarati: {"ઝાંખું દેખાય", "દેખાતું નથી"},
		}},
		{models.SymptomChestPain, surfaces{
			models.LangEnglish:  {"chest pain", "chest tightness", "chest pressure", "heart attack"},
			models.LangHindi:    {"सीने में दर्द", "छाती में दर्द", "दिल का दौरा"},
			models.LangGujarati: {"છાતીમાં દુખાવો", "હાર્ટ એટેક", "છાતીમાં દબાણ"},
		}},
		{models.SymptomBreathlessness, surfaces{
			models.LangEnglish:  {"can't breathe", "cant breathe", "cannot breathe", "difficulty breathing", "trouble breathing", "shortness of breath", "short of breath"},
			models.LangHindi:    {"सांस नहीं आ रही", "सांस लेने में तकलीफ", "साँस लेने में तकलीफ"},
			models.LangGujarati: {"શ્વાસ લેવામાં તકલીફ", "શ્વાસ નથી આવતો"},
		}},
		{models.SymptomHeavyBleeding, surfaces{
			models.LangEnglish:  {"bleeding heavily", "heavy bleeding", "severe bleeding", "won't stop bleeding"},
			models.LangHindi:    {"बहुत खून", "खून बह रहा"},
			models.LangGujarati: {"ખૂબ લોહી", "લોહી વહી રહ્યું"},
		}},
		{models.SymptomUnconsciousness, surfaces{
			models.LangEnglish:  {"unconscious", "passed out", "fainted", "unresponsive"},
			models.LangHindi:    {"बेहोश"},
			models.LangGujarati: {"બેભાન"},
		}},
		{models.SymptomSelfHarm, surfaces{
			models.LangEnglish:  {"suicide", "suicidal", "kill myself", "end my life", "self harm", "self-harm", "hurt myself"},
			models.LangHindi:    {"आत्महत्या", "खुद को नुकसान", "जान देना"},
			models.LangGujarati: {"આત્મહત્યા", "પોતાને નુકસાન"},
		}},
		{models.SymptomSeizure, surfaces{
			models.LangEnglish:  {"seizure", "convulsion"},
			models.LangHindi:    {"मिर्गी", "दौरा पड़ा"},
			models.LangGujarati: {"આંચકી", "ખેંચ આવી"},
		}},
		{models.SymptomStrokeSigns, surfaces{
			models.LangEnglish:  {"face drooping", "slurred speech", "numbness on one side", "stroke"},
			models.LangHindi:    {"लकवा", "चेहरा टेढ़ा"},
			models.LangGujarati: {"લકવો", "મોં વાંકું"},
		}},
	},
	Intents: []Term[models.IntentID]{
		{models.IntentMedical, surfaces{
			models.LangEnglish:  {"sick", "unwell", "pain", "symptom", "medicine", "medical"},
			models.LangHindi:    {"बीमार", "दर्द", "दवा", "लक्षण"},
			models.LangGujarati: {"બીમાર", "દુખાવો", "દવા", "લક્ષણ"},
		}},
		{models.IntentNutrition, surfaces{
			models.LangEnglish:  {"meal", "lunch", "dinner", "breakfast", "diet", "food", "recipe", "nutrition", "snack"},
			models.LangHindi:    {"खाना", "भोजन", "आहार", "नाश्ता"},
			models.LangGujarati: {"ખોરાક", "ભોજન", "જમવા", "નાસ્તો"},
		}},
		{models.IntentFitness, surfaces{
			models.LangEnglish:  {"workout", "work out", "exercise", "fitness", "yoga", "gym", "cardio"},
			models.LangHindi:    {"व्यायाम", "कसरत", "योग"},
			models.LangGujarati: {"કસરત", "વ્યાયામ", "યોગ"},
		}},
		{models.IntentScheduling, surfaces{
			models.LangEnglish:  {"appointment", "book a", "schedule", "checkup", "check-up", "see a doctor"},
			models.LangHindi:    {"अपॉइंटमेंट", "डॉक्टर से मिल"},
			models.LangGujarati: {"એપોઇન્ટમેન્ટ", "ડૉક્ટરને મળ"},
		}},
		{models.IntentTracking, surfaces{
			models.LangEnglish:  {"track", "log my", "monitor my", "record my", "progress"},
			models.LangHindi:    {"ट्रैक", "रिकॉर्ड"},
			models.LangGujarati: {"ટ્રેક", "નોંધ રાખ"},
		}},
		{models.IntentBarcode, surfaces{
			models.LangEnglish:  {"barcode", "scan", "product label"},
			models.LangHindi:    {"बारकोड", "स्कैन"},
			models.LangGujarati: {"બારકોડ", "સ્કેન"},
		}},
	},
	History: []Term[models.HistoryID]{
		{models.HistoryDiabetes, surfaces{
			models.LangEnglish:  {"diabetes", "diabetic", "blood sugar"},
			models.LangHindi:    {"मधुमेह", "डायबिटीज", "शुगर"},
			models.LangGujarati: {"ડાયાબિટીસ", "મધુપ્રમેહ"},
		}},
		{models.HistoryHypertension, surfaces{
			models.LangEnglish:  {"hypertension", "high blood pressure", "high bp"},
			models.LangHindi:    {"उच्च रक्तचाप", "हाई बीपी"},
			models.LangGujarati: {"હાઈ બીપી", "ઊંચું બ્લડ પ્રેશર"},
		}},
		{models.HistoryPregnancy, surfaces{
			models.LangEnglish:  {"pregnant", "pregnancy"},
			models.LangHindi:    {"गर्भवती", "प्रेगनेंट"},
			models.LangGujarati: {"ગર્ભવતી", "સગર્ભા"},
		}},
		{models.HistoryAsthma, surfaces{
			models.LangEnglish:  {"asthma", "asthmatic"},
			models.LangHindi:    {"दमा", "अस्थमा"},
			models.LangGujarati: {"અસ્થમા"},
		}},
	},
	Modifiers: []Term[models.Modifier]{
		{models.ModifierLowCarb, surfaces{
			models.LangEnglish:  {"low carb", "low-carb", "keto"},
			models.LangHindi:    {"लो कार्ब", "कम कार्ब"},
			models.LangGujarati: {"લો કાર્બ", "ઓછા કાર્બ"},
		}},
		{models.ModifierMorning, surfaces{
			models.LangEnglish:  {"morning"},
			models.LangHindi:    {"सुबह"},
			models.LangGujarati: {"સવાર"},
		}},
		{models.ModifierBreakfast, surfaces{
			models.LangEnglish:  {"breakfast"},
			models.LangHindi:    {"नाश्ता"},
			models.LangGujarati: {"નાસ્તો"},
		}},
	},
	Genders: []Term[models.Gender]{
		{models.GenderMale, surfaces{
			models.LangEnglish:  {"male", "man", "boy", "guy", "gentleman"},
			models.LangHindi:    {"पुरुष", "लड़का", "आदमी"},
			models.LangGujarati: {"પુરુષ", "છોકરો"},
		}},
		{models.GenderFemale, surfaces{
			models.LangEnglish:  {"female", "woman", "girl", "lady"},
			models.LangHindi:    {"महिला", "लड़की", "औरत", "स्त्री"},
			models.LangGujarati: {"મહિલા", "સ્ત્રી", "છોકરી"},
		}},
		{models.GenderOther, surfaces{
			models.LangEnglish:  {"non-binary", "nonbinary"},
			models.LangHindi:    {"ट्रांसजेंडर", "अन्य लिंग"},
			models.LangGujarati: {"ટ્રાન્સજેન્ડર", "અન્ય લિંગ"},
		}},
	},
}
