package prompts

import "github.com/nens2012/life-aid-nexus/internal/models"

const (
	en = models.LangEnglish
	hi = models.LangHindi
	gu = models.LangGujarati
)

var builtinMessages = map[MessageID]Message{
	MsgDisclaimer: {Text: localized{
		en: "⚠ This is AI-based wellness guidance. Please consult a certified doctor for confirmation.",
		hi: "⚠ यह AI-आधारित कल्याण मार्गदर्शन है। कृपया पुष्टि के लिए प्रमाणित डॉक्टर से सलाह लें।",
		gu: "⚠ આ AI-આધારિત કલ્યાણ માર્ગદર્શન છે. કૃપા કરીને પુષ્ટિ માટે પ્રમાણિત ડૉક્ટર સાથે સલાહ લો.",
	}},
	MsgEmergency: {Vars: []string{"number"}, Text: localized{
		en: "🚨 URGENT MEDICAL EMERGENCY 🚨 Based on your symptoms, this requires immediate medical attention. Call emergency services ({{.number}}) right now.",
		hi: "🚨 तत्काल चिकित्सा आपातकाल 🚨 आपके लक्षणों के आधार पर, इसके लिए तुरंत चिकित्सा सहायता की आवश्यकता है। आपातकालीन सेवाओं ({{.number}}) को अभी कॉल करें।",
		gu: "🚨 તાત્કાલિક તબીબી આપત્કાલ 🚨 તમારા લક્ષણોના આધારે, આને તાત્કાલિક તબીબી મદદની જરૂર છે. આપત્તિ સેવાઓ ({{.number}}) ને હમણાં જ કૉલ કરો.",
	}},
	MsgFallback: {Text: localized{
		en: "I didn't understand your request clearly. Could you please rephrase what you'd like help with?",
		hi: "मैं आपका अनुरोध स्पष्ट रूप से नहीं समझ पाया। कृपया दोबारा बताएं कि आपको किस बारे में मदद चाहिए?",
		gu: "હું તમારી વિનંતી સ્પષ્ટ રીતે સમજી શક્યો નહીં. કૃપા કરીને ફરીથી જણાવો કે તમને શેમાં મદદ જોઈએ છે?",
	}},
	MsgError: {Text: localized{
		en: "I'm sorry, I encountered an error processing your request. Please try again.",
		hi: "क्षमा करें, आपके अनुरोध को संसाधित करते समय एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
		gu: "માફ કરશો, તમારી વિનંતી પર પ્રક્રિયા કરતી વખતે ભૂલ આવી. કૃપા કરીને ફરી પ્રયાસ કરો.",
	}},
	MsgAskProfile: {Text: localized{
		en: "Share your age and gender for more personalised advice",
		hi: "अधिक व्यक्तिगत सलाह के लिए अपनी उम्र और लिंग बताएं",
		gu: "વધુ વ્યક્તિગત સલાહ માટે તમારી ઉંમર અને લિંગ જણાવો",
	}},
	MsgSummarySymptoms: {Vars: []string{"condition"}, Text: localized{
		en: "Based on your symptoms, the most likely cause is {{.condition}}.",
		hi: "आपके लक्षणों के आधार पर, सबसे संभावित कारण {{.condition}} है।",
		gu: "તમારા લક્ષણોના આધારે, સૌથી સંભવિત કારણ {{.condition}} છે.",
	}},
	MsgSummaryMedical: {Text: localized{
		en: "I've provided guidance for managing your symptoms.",
		hi: "मैंने आपके लक्षणों को संभालने के लिए मार्गदर्शन दिया है।",
		gu: "મેં તમારા લક્ષણોને સંભાળવા માટે માર્ગદર્શન આપ્યું છે.",
	}},
	MsgSummaryMeal: {Vars: []string{"count"}, Text: localized{
		en: "I've suggested {{.count}} healthy meal options.",
		hi: "मैंने {{.count}} स्वस्थ भोजन विकल्प सुझाए हैं।",
		gu: "મેં {{.count}} આરોગ્યપ્રદ ભોજન વિકલ્પો સૂચવ્યા છે.",
	}},
	MsgSummaryMealOne: {Text: localized{
		en: "I've suggested a healthy meal option.",
		hi: "मैंने एक स्वस्थ भोजन विकल्प सुझाया है।",
		gu: "મેં એક આરોગ્યપ્રદ ભોજન વિકલ્પ સૂચવ્યો છે.",
	}},
	MsgSummaryWorkout: {Vars: []string{"minutes", "calories"}, Text: localized{
		en: "I've created a {{.minutes}}-minute workout plan that burns about {{.calories}} calories.",
		hi: "मैंने {{.minutes}} मिनट की व्यायाम योजना बनाई है जिससे लगभग {{.calories}} कैलोरी बर्न होती हैं।",
		gu: "મેં {{.minutes}} મિનિટની કસરત યોજના બનાવી છે જેનાથી આશરે {{.calories}} કેલરી બળે છે.",
	}},
	MsgSummaryBarcode: {Vars: []string{"product"}, Text: localized{
		en: "I've analysed {{.product}} for you.",
		hi: "मैंने आपके लिए {{.product}} का विश्लेषण किया है।",
		gu: "મેં તમારા માટે {{.product}}નું વિશ્લેષણ કર્યું છે.",
	}},
	MsgSummaryAppointment: {Vars: []string{"specialty"}, Text: localized{
		en: "I've found available {{.specialty}} appointment slots.",
		hi: "मैंने {{.specialty}} के उपलब्ध अपॉइंटमेंट समय ढूंढे हैं।",
		gu: "મેં {{.specialty}}ના ઉપલબ્ધ એપોઇન્ટમેન્ટ સમય શોધ્યા છે.",
	}},
	MsgSummaryTracking: {Vars: []string{"count"}, Text: localized{
		en: "I've set up {{.count}} wellness metrics to track.",
		hi: "मैंने ट्रैक करने के लिए {{.count}} स्वास्थ्य मापदंड तैयार किए हैं।",
		gu: "મેં ટ્રેક કરવા માટે {{.count}} આરોગ્ય માપદંડ તૈયાર કર્યા છે.",
	}},
	MsgTitleMedical: {Text: localized{en: "Symptom Guidance", hi: "लक्षण मार्गदर्शन", gu: "લક્ષણ માર્ગદર્શન"}},
	MsgDescMedical: {Text: localized{
		en: "Possible conditions and care advice",
		hi: "संभावित स्थितियां और देखभाल सलाह",
		gu: "સંભવિત સ્થિતિઓ અને સંભાળ સલાહ",
	}},
	MsgTitleMealLowCarb: {Text: localized{en: "Low-Carb Lunch Options", hi: "लो-कार्ब लंच विकल्प", gu: "લો-કાર્બ લંચ વિકલ્પો"}},
	MsgDescMealLowCarb: {Text: localized{
		en: "Healthy low-carb lunch suggestions",
		hi: "स्वस्थ लो-कार्ब लंच सुझाव",
		gu: "આરોગ્યપ્રદ લો-કાર્બ લંચ સૂચનો",
	}},
	MsgTitleMealBreakfast: {Text: localized{en: "Energizing Breakfast Options", hi: "ऊर्जादायक नाश्ते के विकल्प", gu: "ઊર્જાદાયક નાસ્તાના વિકલ્પો"}},
	MsgDescMealBreakfast: {Text: localized{
		en: "Breakfast ideas to fuel your morning",
		hi: "आपकी सुबह को ऊर्जा देने वाले नाश्ते के विचार",
		gu: "તમારી સવારને ઊર્જા આપતા નાસ્તાના વિચારો",
	}},
	MsgTitleMealGeneral: {Text: localized{en: "Healthy Meal Suggestions", hi: "स्वस्थ भोजन सुझाव", gu: "આરોગ્યપ્રદ ભોજન સૂચનો"}},
	MsgDescMealGeneral: {Text: localized{
		en: "Nutritious meal recommendations",
		hi: "पौष्टिक भोजन सिफारिशें",
		gu: "પૌષ્ટિક ભોજન ભલામણો",
	}},
	MsgTitleWorkout: {Vars: []string{"minutes"}, Text: localized{
		en: "{{.minutes}}-Minute Home Workout",
		hi: "{{.minutes}} मिनट का होम वर्कआउट",
		gu: "{{.minutes}} મિનિટનું હોમ વર્કઆઉટ",
	}},
	MsgDescWorkout: {Text: localized{
		en: "Effective home workout routine",
		hi: "प्रभावी घरेलू व्यायाम दिनचर्या",
		gu: "અસરકારક ઘરેલું કસરત દિનચર્યા",
	}},
	MsgTitleWorkoutAM: {Vars: []string{"minutes"}, Text: localized{
		en: "{{.minutes}}-Minute Morning Energy Workout",
		hi: "{{.minutes}} मिनट का सुबह का ऊर्जा वर्कआउट",
		gu: "{{.minutes}} મિનિટનું સવારનું ઊર્જા વર્કઆઉટ",
	}},
	MsgDescWorkoutAM: {Text: localized{
		en: "Quick morning routine to boost energy",
		hi: "ऊर्जा बढ़ाने के लिए त्वरित सुबह की दिनचर्या",
		gu: "ઊર્જા વધારવા માટે ઝડપી સવારની દિનચર્યા",
	}},
	MsgTitleBarcode: {Text: localized{en: "Food Product Analysis", hi: "खाद्य उत्पाद विश्लेषण", gu: "ખાદ્ય ઉત્પાદન વિશ્લેષણ"}},
	MsgDescBarcode: {Text: localized{
		en: "Nutritional analysis of scanned product",
		hi: "स्कैन किए गए उत्पाद का पोषण विश्लेषण",
		gu: "સ્કેન કરેલા ઉત્પાદનનું પોષણ વિશ્લેષણ",
	}},
	MsgTitleAppointment: {Text: localized{en: "Book a Consultation", hi: "परामर्श बुक करें", gu: "પરામર્શ બુક કરો"}},
	MsgDescAppointment: {Text: localized{
		en: "Available appointment slots with a doctor",
		hi: "डॉक्टर के साथ उपलब्ध अपॉइंटमेंट समय",
		gu: "ડૉક્ટર સાથે ઉપલબ્ધ એપોઇન્ટમેન્ટ સમય",
	}},
	MsgTitleTracking: {Text: localized{en: "Wellness Tracking", hi: "स्वास्थ्य ट्रैकिंग", gu: "આરોગ્ય ટ્રેકિંગ"}},
	MsgDescTracking: {Text: localized{
		en: "Daily metrics to monitor your progress",
		hi: "आपकी प्रगति पर नज़र रखने के लिए दैनिक मापदंड",
		gu: "તમારી પ્રગતિ પર નજર રાખવા માટે દૈનિક માપદંડ",
	}},
}

var builtinLists = map[ListID]localizedList{
	ListEmergencyActions: {
		en: {
			"Call emergency services immediately",
			"Go to the nearest emergency room immediately",
			"Do not drive yourself - call an ambulance or have someone drive you",
		},
		hi: {
			"तुरंत आपातकालीन सेवाओं को कॉल करें",
			"तुरंत निकटतम आपातकालीन कक्ष में जाएं",
			"खुद गाड़ी न चलाएं - एम्बुलेंस बुलाएं या किसी को चलाने को कहें",
		},
		gu: {
			"તાત્કાલિક આપત્તિ સેવાઓને કૉલ કરો",
			"તાત્કાલિક નજીકના આપત્તિ વિભાગમાં જાઓ",
			"પોતે ગાડી ન ચલાવો - એમ્બ્યુલન્સ બોલાવો અથવા કોઈને ચલાવવા કહો",
		},
	},
	ListSymptomNextSteps: {
		en: {"Monitor your symptoms closely", "Follow the advice given", "Consult a doctor if symptoms worsen"},
		hi: {"लक्षणों पर बारीकी से नजर रखें", "दी गई सलाह का पालन करें", "यदि लक्षण बिगड़ें तो डॉक्टर से मिलें"},
		gu: {"લક્ષણો પર નજીકથી ધ્યાન રાખો", "આપેલ સલાહનું પાલન કરો", "જો લક્ષણો બગડે તો ડૉક્ટરને મળો"},
	},
	ListSymptomFollowUps: {
		en: {"Ask for clarification", "Book a doctor appointment", "Track my symptoms"},
		hi: {"स्पष्टीकरण मांगें", "डॉक्टर का अपॉइंटमेंट बुक करें", "मेरे लक्षण ट्रैक करें"},
		gu: {"સ્પષ્ટીકરણ માંગો", "ડૉક્ટરની એપોઇન્ટમેન્ટ બુક કરો", "મારા લક્ષણો ટ્રેક કરો"},
	},

	NextStepsFor(models.ComponentMedicalAdvice): {
		en: {"Monitor your symptoms closely", "Follow the recommended care instructions"},
		hi: {"लक्षणों पर बारीकी से नजर रखें", "सुझाए गए देखभाल निर्देशों का पालन करें"},
		gu: {"લક્ષણો પર નજીકથી ધ્યાન રાખો", "ભલામણ કરેલ સંભાળ સૂચનાઓનું પાલન કરો"},
	},
	NextStepsFor(models.ComponentMealSuggestion): {
		en: {"Choose one of the suggested meals", "Gather the required ingredients"},
		hi: {"सुझाए गए भोजन में से एक चुनें", "आवश्यक सामग्री इकट्ठा करें"},
		gu: {"સૂચવેલા ભોજનમાંથી એક પસંદ કરો", "જરૂરી સામગ્રી એકઠી કરો"},
	},
	NextStepsFor(models.ComponentWorkoutPlan): {
		en: {"Complete the suggested workout", "Track your progress"},
		hi: {"सुझाया गया व्यायाम पूरा करें", "अपनी प्रगति ट्रैक करें"},
		gu: {"સૂચવેલ કસરત પૂર્ણ કરો", "તમારી પ્રગતિ ટ્રેક કરો"},
	},
	NextStepsFor(models.ComponentBarcodeScan): {
		en: {"Review the nutrition breakdown", "Compare with the suggested alternatives"},
		hi: {"पोषण विवरण देखें", "सुझाए गए विकल्पों से तुलना करें"},
		gu: {"પોષણ વિગતો જુઓ", "સૂચવેલા વિકલ્પો સાથે સરખામણી કરો"},
	},
	NextStepsFor(models.ComponentAppointmentBooking): {
		en: {"Pick a convenient slot", "Note down your symptoms before the visit"},
		hi: {"सुविधाजनक समय चुनें", "मुलाकात से पहले अपने लक्षण लिख लें"},
		gu: {"અનુકૂળ સમય પસંદ કરો", "મુલાકાત પહેલાં તમારા લક્ષણો નોંધી લો"},
	},
	NextStepsFor(models.ComponentWellnessTracking): {
		en: {"Log today's readings", "Track your progress"},
		hi: {"आज की रीडिंग दर्ज करें", "अपनी प्रगति ट्रैक करें"},
		gu: {"આજના રીડિંગ નોંધો", "તમારી પ્રગતિ ટ્રેક કરો"},
	},

	SuggestionsFor(models.ComponentMedicalAdvice): {
		en: {"Schedule a doctor visit", "Track symptoms"},
		hi: {"डॉक्टर से मिलने का समय तय करें", "लक्षण ट्रैक करें"},
		gu: {"ડૉક્ટરની મુલાકાત નક્કી કરો", "લક્ષણો ટ્રેક કરો"},
	},
	SuggestionsFor(models.ComponentMealSuggestion): {
		en: {"Add to meal plan", "Find alternatives"},
		hi: {"भोजन योजना में जोड़ें", "विकल्प खोजें"},
		gu: {"ભોજન યોજનામાં ઉમેરો", "વિકલ્પો શોધો"},
	},
	SuggestionsFor(models.ComponentWorkoutPlan): {
		en: {"Start workout", "Modify difficulty"},
		hi: {"व्यायाम शुरू करें", "कठिनाई बदलें"},
		gu: {"કસરત શરૂ કરો", "મુશ્કેલી બદલો"},
	},
	SuggestionsFor(models.ComponentBarcodeScan): {
		en: {"Find alternatives", "View nutrition details"},
		hi: {"विकल्प खोजें", "पोषण विवरण देखें"},
		gu: {"વિકલ્પો શોધો", "પોષણ વિગતો જુઓ"},
	},
	SuggestionsFor(models.ComponentAppointmentBooking): {
		en: {"Confirm appointment", "Schedule a doctor visit"},
		hi: {"अपॉइंटमेंट की पुष्टि करें", "डॉक्टर से मिलने का समय तय करें"},
		gu: {"એપોઇન્ટમેન્ટની પુષ્ટિ કરો", "ડૉક્ટરની મુલાકાત નક્કી કરો"},
	},
	SuggestionsFor(models.ComponentWellnessTracking): {
		en: {"Set reminders", "Track symptoms"},
		hi: {"रिमाइंडर सेट करें", "लक्षण ट्रैक करें"},
		gu: {"રિમાઇન્ડર સેટ કરો", "લક્ષણો ટ્રેક કરો"},
	},
}
