package rules

import "github.com/nens2012/life-aid-nexus/internal/models"

// ElderAge is the age above which elder-specific advice is added.
const ElderAge = 65

// FallbackRuleID names the rule that matches when nothing else does.
const FallbackRuleID = "general_wellness"

type text = map[models.Language]Bundle

type advice = map[models.Language]string

var elderAdvice = Variant{When: AgeAbove(ElderAge), Advice: advice{
	models.LangEnglish:  "Due to your age (65+), monitor symptoms closely and consider early medical consultation",
	models.LangHindi:    "आपकी उम्र (65+) के कारण, लक्षणों पर बारीकी से नजर रखें और जल्दी चिकित्सा सलाह लें",
	models.LangGujarati: "તમારી ઉંમર (65+)ના કારણે, લક્ષણો પર નજીકથી ધ્યાન રાખો અને વહેલી તબીબી સલાહ લો",
}}

// Builtin returns the rule set shipped with the service, most specific first.
func Builtin() []Rule {
	return []Rule{
		{
			ID:         "viral_infection",
			Pattern:    []models.SymptomID{models.SymptomFever, models.SymptomCough},
			Level:      models.SafetyCaution,
			Confidence: 0.85,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Viral Infection (Common Cold/Flu)", "Flu (Influenza)", "Viral Upper Respiratory Infection"},
					Advice: []string{
						"Rest for at least 7-8 hours daily and avoid strenuous activities",
						"Drink warm fluids like herbal tea, warm water with honey and lemon (8-10 glasses daily)",
						"Take paracetamol 500mg every 6 hours for fever (if no allergies)",
						"Use steam inhalation 2-3 times daily for congestion relief",
						"Gargle with warm salt water (1 tsp salt in 1 cup water) 3 times daily",
						"Maintain isolation to prevent spreading infection to others",
					},
					WhenToSeekHelp: []string{"If fever exceeds 102°F (38.9°C) for more than 3 days or breathing difficulty occurs, consult a doctor immediately"},
				},
				models.LangHindi: {
					Conditions: []string{"वायरल संक्रमण (सामान्य सर्दी/फ्लू)", "फ्लू (इन्फ्लूएंजा)", "वायरल श्वसन संक्रमण"},
					Advice: []string{
						"दैनिक 7-8 घंटे आराम करें और कठिन गतिविधियों से बचें",
						"गर्म तरल पदार्थ जैसे हर्बल चाय, शहद-नींबू के साथ गर्म पानी पिएं (दैनिक 8-10 गिलास)",
						"बुखार के लिए पेरासिटामोल 500mg हर 6 घंटे में लें (यदि कोई एलर्जी नहीं है)",
						"कफ से राहत के लिए दिन में 2-3 बार भाप लें",
						"दिन में 3 बार गर्म नमक के पानी से गरारे करें (1 चम्मच नमक 1 कप पानी में)",
						"संक्रमण फैलने से रोकने के लिए अलगाव बनाए रखें",
					},
					WhenToSeekHelp: []string{"यदि बुखार 3 दिनों से अधिक 102°F (38.9°C) से ऊपर रहे या सांस लेने में तकलीफ हो तो तुरंत डॉक्टर से मिलें"},
				},
				models.LangGujarati: {
					Conditions: []string{"વાયરલ ચેપ (સામાન્ય શરદી/ફ્લૂ)", "ફ્લૂ (ઇન્ફ્લુએન્ઝા)", "વાયરલ શ્વસન ચેપ"},
					Advice: []string{
						"દૈનિક 7-8 કલાક આરામ કરો અને કઠિન પ્રવૃત્તિઓ ટાળો",
						"હર્બલ ટી, મધ-લીંબુ સાથે ગરમ પાણી જેવા ગરમ પ્રવાહી પીઓ (દૈનિક 8-10 ગ્લાસ)",
						"તાવ માટે પેરાસિટામોલ 500mg દર 6 કલાકે લો (જો કોઈ એલર્જી નથી)",
						"કફથી રાહત માટે દિવસમાં 2-3 વાર વરાળ લો",
						"દિવસમાં 3 વાર ગરમ મીઠાના પાણીથી કોગળા કરો (1 ચમચી મીઠું 1 કપ પાણીમાં)",
						"ચેપ ફેલાતો અટકાવવા માટે એકલતા જાળવો",
					},
					WhenToSeekHelp: []string{"જો તાવ 3 દિવસથી વધુ 102°F (38.9°C)થી વધુ રહે અથવા શ્વાસ લેવામાં તકલીફ થાય તો તાત્કાલિક ડૉક્ટરને મળો"},
				},
			},
			Variants: []Variant{
				elderAdvice,
				{When: HasHistory(models.HistoryDiabetes), Advice: advice{
					models.LangEnglish:  "Diabetes can make infections harder to control - check your blood sugar more often while you are unwell",
					models.LangHindi:    "मधुमेह में संक्रमण नियंत्रित करना कठिन हो सकता है - बीमारी के दौरान ब्लड शुगर अधिक बार जांचें",
					models.LangGujarati: "ડાયાબિટીસમાં ચેપ નિયંત્રિત કરવો મુશ્કેલ બની શકે છે - બીમારી દરમિયાન બ્લડ સુગર વધુ વાર તપાસો",
				}},
				{When: HasHistory(models.HistoryAsthma), Advice: advice{
					models.LangEnglish:  "With asthma, keep your reliever inhaler close and watch for wheezing",
					models.LangHindi:    "अस्थमा होने पर अपना इनहेलर पास रखें और घरघराहट पर ध्यान दें",
					models.LangGujarati: "અસ્થમા હોય તો તમારું ઇન્હેલર પાસે રાખો અને ઘરઘરાટી પર ધ્યાન આપો",
				}},
			},
		},
		{
			ID:         "tension_migraine",
			Pattern:    []models.SymptomID{models.SymptomHeadache, models.SymptomNausea},
			Level:      models.SafetyCaution,
			Confidence: 0.8,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Tension Headache", "Migraine", "Dehydration"},
					Advice: []string{
						"Rest in a dark, quiet room for 30-60 minutes",
						"Apply cold compress on forehead for 15-20 minutes",
						"Drink plenty of water (at least 8-10 glasses daily) to prevent dehydration",
						"Take paracetamol 500mg or ibuprofen 400mg (if no allergies or stomach issues)",
						"Avoid bright lights, loud noises, and strong smells",
						"Avoid skipping meals and maintain regular sleep schedule",
					},
					WhenToSeekHelp: []string{"If headache is severe, persistent (>24 hours), or accompanied by vision changes, seek medical attention"},
				},
				models.LangHindi: {
					Conditions: []string{"तनाव सिरदर्द", "माइग्रेन", "निर्जलीकरण"},
					Advice: []string{
						"30-60 मिनट के लिए अंधेरे, शांत कमरे में आराम करें",
						"माथे पर 15-20 मिनट के लिए ठंडी सिकाई करें",
						"निर्जलीकरण से बचने के लिए भरपूर पानी पिएं (दैनिक कम से कम 8-10 गिलास)",
						"पेरासिटामोल 500mg या इबुप्रोफेन 400mg लें (यदि कोई एलर्जी या पेट की समस्या नहीं है)",
						"तेज रोशनी, तेज आवाज और तेज गंध से बचें",
						"भोजन न छोड़ें और नियमित नींद का समय बनाए रखें",
					},
					WhenToSeekHelp: []string{"यदि सिरदर्द गंभीर है, लगातार (>24 घंटे) है, या आंखों की रोशनी में बदलाव के साथ है, तो चिकित्सा सहायता लें"},
				},
				models.LangGujarati: {
					Conditions: []string{"તણાવ માથાનો દુખાવો", "માઇગ્રેન", "ડિહાઇડ્રેશન"},
					Advice: []string{
						"30-60 મિનિટ માટે અંધારા, શાંત રૂમમાં આરામ કરો",
						"કપાળ પર 15-20 મિનિટ માટે ઠંડી સિકાઈ કરો",
						"ડિહાઇડ્રેશન ટાળવા માટે ભરપૂર પાણી પીઓ (દૈનિક ઓછામાં ઓછા 8-10 ગ્લાસ)",
						"પેરાસિટામોલ 500mg અથવા આઇબુપ્રોફેન 400mg લો (જો કોઈ એલર્જી અથવા પેટની સમસ્યા નથી)",
						"તીવ્ર પ્રકાશ, મોટો અવાજ અને તીવ્ર ગંધ ટાળો",
						"ભોજન ન છોડો અને નિયમિત ઊંઘનું સમયપત્રક જાળવો",
					},
					WhenToSeekHelp: []string{"જો માથાનો દુખાવો ગંભીર છે, સતત છે (>24 કલાક), અથવા દ્રષ્ટિ બદલાવ સાથે છે, તો તબીબી મદદ લો"},
				},
			},
			Variants: []Variant{
				{When: GenderIs(models.GenderFemale), Advice: advice{
					models.LangEnglish:  "For women: headaches can be related to hormonal changes - track patterns with your menstrual cycle",
					models.LangHindi:    "महिलाओं के लिए: सिरदर्द हार्मोनल बदलाव से संबंधित हो सकता है - मासिक धर्म चक्र के साथ पैटर्न ट्रैक करें",
					models.LangGujarati: "સ્ત્રીઓ માટે: માથાનો દુખાવો હોર્મોનલ ફેરફારો સાથે સંબંધિત હોઈ શકે છે - માસિક ધર્મ સાથે પેટર્ન ટ્રેક કરો",
				}},
			},
		},
		{
			ID:         "gastroenteritis",
			Pattern:    []models.SymptomID{models.SymptomNausea, models.SymptomDiarrhea},
			Level:      models.SafetyCaution,
			Confidence: 0.8,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Gastroenteritis (Stomach Flu)", "Food Poisoning", "Indigestion"},
					Advice: []string{
						"Sip oral rehydration solution (ORS) or clear fluids in small amounts every 15 minutes",
						"Eat bland foods like rice, bananas, toast and curd once vomiting settles",
						"Avoid dairy, fried or spicy food, caffeine and alcohol for 48 hours",
						"Wash hands thoroughly with soap to avoid spreading infection",
					},
					WhenToSeekHelp: []string{
						"If you cannot keep fluids down for more than 24 hours or notice signs of dehydration (very little urine, dry mouth, dizziness)",
						"If there is blood in stool or vomit, or a high fever",
					},
				},
				models.LangHindi: {
					Conditions: []string{"गैस्ट्रोएंटेराइटिस (पेट का फ्लू)", "फूड पॉइज़निंग", "अपच"},
					Advice: []string{
						"हर 15 मिनट में थोड़ी मात्रा में ओआरएस या साफ तरल पदार्थ पिएं",
						"उल्टी रुकने पर चावल, केला, टोस्ट और दही जैसा हल्का भोजन लें",
						"48 घंटे तक डेयरी, तला-भुना या मसालेदार भोजन, कैफीन और शराब से बचें",
						"संक्रमण फैलने से रोकने के लिए साबुन से अच्छी तरह हाथ धोएं",
					},
					WhenToSeekHelp: []string{
						"यदि 24 घंटे से अधिक समय तक तरल पदार्थ नहीं टिकते या निर्जलीकरण के लक्षण दिखें (बहुत कम पेशाब, सूखा मुंह, चक्कर)",
						"यदि मल या उल्टी में खून हो, या तेज बुखार हो",
					},
				},
				models.LangGujarati: {
					Conditions: []string{"ગેસ્ટ્રોએન્ટેરાઇટિસ (પેટનો ફ્લૂ)", "ફૂડ પોઇઝનિંગ", "અપચો"},
					Advice: []string{
						"દર 15 મિનિટે થોડી માત્રામાં ઓઆરએસ અથવા સ્વચ્છ પ્રવાહી પીઓ",
						"ઉલટી બંધ થાય પછી ભાત, કેળાં, ટોસ્ટ અને દહીં જેવો હળવો ખોરાક લો",
						"48 કલાક સુધી ડેરી, તળેલો કે મસાલેદાર ખોરાક, કેફીન અને દારૂ ટાળો",
						"ચેપ ફેલાતો અટકાવવા સાબુથી સારી રીતે હાથ ધોવો",
					},
					WhenToSeekHelp: []string{
						"જો 24 કલાકથી વધુ સમય સુધી પ્રવાહી ટકતું ન હોય અથવા ડિહાઇડ્રેશનના લક્ષણો દેખાય (ખૂબ ઓછો પેશાબ, સૂકું મોં, ચક્કર)",
						"જો મળ અથવા ઉલટીમાં લોહી હોય, અથવા ઊંચો તાવ હોય",
					},
				},
			},
			Variants: []Variant{
				{When: AgeAbove(ElderAge), Advice: advice{
					models.LangEnglish:  "Older adults dehydrate faster - consult a doctor early if diarrhea lasts more than a day",
					models.LangHindi:    "बुजुर्गों में पानी की कमी जल्दी होती है - यदि दस्त एक दिन से अधिक रहे तो जल्दी डॉक्टर से सलाह लें",
					models.LangGujarati: "વૃદ્ધોમાં પાણીની ઉણપ ઝડપથી થાય છે - જો ઝાડા એક દિવસથી વધુ રહે તો વહેલા ડૉક્ટરની સલાહ લો",
				}},
			},
		},
		{
			ID:         "throat_infection",
			Pattern:    []models.SymptomID{models.SymptomFever, models.SymptomSoreThroat},
			Level:      models.SafetyCaution,
			Confidence: 0.8,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Pharyngitis (Throat Infection)", "Tonsillitis", "Viral Infection"},
					Advice: []string{
						"Gargle with warm salt water 3-4 times daily",
						"Drink warm fluids such as soups, herbal tea or warm water with honey",
						"Take paracetamol 500mg every 6 hours for fever and pain (if no allergies)",
						"Rest your voice and avoid cold drinks and smoking",
					},
					WhenToSeekHelp: []string{"If swallowing becomes very difficult, you drool, or fever lasts more than 3 days"},
				},
				models.LangHindi: {
					Conditions: []string{"ग्रसनीशोथ (गले का संक्रमण)", "टॉन्सिलाइटिस", "वायरल संक्रमण"},
					Advice: []string{
						"दिन में 3-4 बार गर्म नमक के पानी से गरारे करें",
						"सूप, हर्बल चाय या शहद के साथ गर्म पानी जैसे गर्म तरल पदार्थ पिएं",
						"बुखार और दर्द के लिए हर 6 घंटे में पेरासिटामोल 500mg लें (यदि कोई एलर्जी नहीं है)",
						"आवाज़ को आराम दें और ठंडे पेय व धूम्रपान से बचें",
					},
					WhenToSeekHelp: []string{"यदि निगलना बहुत कठिन हो जाए, लार टपके, या बुखार 3 दिनों से अधिक रहे"},
				},
				models.LangGujarati: {
					Conditions: []string{"ફેરિન્જાઇટિસ (ગળાનો ચેપ)", "ટોન્સિલાઇટિસ", "વાયરલ ચેપ"},
					Advice: []string{
						"દિવસમાં 3-4 વાર ગરમ મીઠાના પાણીથી કોગળા કરો",
						"સૂપ, હર્બલ ટી અથવા મધ સાથે ગરમ પાણી જેવા ગરમ પ્રવાહી પીઓ",
						"તાવ અને દુખાવા માટે દર 6 કલાકે પેરાસિટામોલ 500mg લો (જો કોઈ એલર્જી નથી)",
						"અવાજને આરામ આપો અને ઠંડા પીણાં તથા ધૂમ્રપાન ટાળો",
					},
					WhenToSeekHelp: []string{"જો ગળવું ખૂબ મુશ્કેલ બને, લાળ ટપકે, અથવા તાવ 3 દિવસથી વધુ રહે"},
				},
			},
		},
		{
			ID:         "headache_dizziness",
			Pattern:    []models.SymptomID{models.SymptomHeadache, models.SymptomDizziness},
			Level:      models.SafetySafe,
			Confidence: 0.75,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Possible Migraine or Tension Headache", "Dehydration", "Low Blood Pressure"},
					Advice: []string{
						"Rest in a dark, quiet room",
						"Apply cold compress to forehead",
						"Stay hydrated",
						"Consider over-the-counter pain relief",
					},
					WhenToSeekHelp: []string{"If headache is severe or persistent"},
				},
				models.LangHindi: {
					Conditions: []string{"संभावित माइग्रेन या तनाव सिरदर्द", "निर्जलीकरण", "निम्न रक्तचाप"},
					Advice: []string{
						"अंधेरे, शांत कमरे में आराम करें",
						"माथे पर ठंडी सिकाई करें",
						"पर्याप्त पानी पिएं",
						"बिना पर्ची वाली दर्द निवारक दवा पर विचार करें",
					},
					WhenToSeekHelp: []string{"यदि सिरदर्द गंभीर या लगातार हो"},
				},
				models.LangGujarati: {
					Conditions: []string{"સંભવિત માઇગ્રેન અથવા તણાવ માથાનો દુખાવો", "ડિહાઇડ્રેશન", "લો બ્લડ પ્રેશર"},
					Advice: []string{
						"અંધારા, શાંત રૂમમાં આરામ કરો",
						"કપાળ પર ઠંડી સિકાઈ કરો",
						"પૂરતું પાણી પીઓ",
						"ઓવર-ધ-કાઉન્ટર દુખાવાની દવા વિશે વિચારો",
					},
					WhenToSeekHelp: []string{"જો માથાનો દુખાવો ગંભીર અથવા સતત હોય"},
				},
			},
			Variants: []Variant{
				{When: HasHistory(models.HistoryHypertension), Advice: advice{
					models.LangEnglish:  "With high blood pressure, check your BP now - headache with dizziness can signal a spike",
					models.LangHindi:    "उच्च रक्तचाप होने पर अभी अपना बीपी जांचें - चक्कर के साथ सिरदर्द बीपी बढ़ने का संकेत हो सकता है",
					models.LangGujarati: "હાઈ બીપી હોય તો હમણાં બીપી તપાસો - ચક્કર સાથે માથાનો દુખાવો બીપી વધવાનો સંકેત હોઈ શકે છે",
				}},
			},
		},
		{
			ID:         "fever",
			Pattern:    []models.SymptomID{models.SymptomFever},
			Level:      models.SafetyCaution,
			Confidence: 0.7,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Viral Fever", "Early Infection"},
					Advice: []string{
						"Rest and drink plenty of fluids (8-10 glasses daily)",
						"Take paracetamol 500mg every 6 hours if temperature is above 100°F (37.8°C) (if no allergies)",
						"Sponge with lukewarm water to bring the temperature down",
						"Check your temperature every 4-6 hours and note it down",
					},
					WhenToSeekHelp: []string{"If fever persists more than 3 days or exceeds 103°F (39.4°C)"},
				},
				models.LangHindi: {
					Conditions: []string{"वायरल बुखार", "प्रारंभिक संक्रमण"},
					Advice: []string{
						"आराम करें और भरपूर तरल पदार्थ पिएं (दैनिक 8-10 गिलास)",
						"यदि तापमान 100°F (37.8°C) से ऊपर हो तो हर 6 घंटे में पेरासिटामोल 500mg लें (यदि कोई एलर्जी नहीं है)",
						"तापमान कम करने के लिए गुनगुने पानी से स्पंज करें",
						"हर 4-6 घंटे में तापमान जांचें और लिख लें",
					},
					WhenToSeekHelp: []string{"यदि बुखार 3 दिनों से अधिक रहे या 103°F (39.4°C) से ऊपर जाए"},
				},
				models.LangGujarati: {
					Conditions: []string{"વાયરલ તાવ", "પ્રારંભિક ચેપ"},
					Advice: []string{
						"આરામ કરો અને ભરપૂર પ્રવાહી પીઓ (દૈનિક 8-10 ગ્લાસ)",
						"જો તાપમાન 100°F (37.8°C)થી વધુ હોય તો દર 6 કલાકે પેરાસિટામોલ 500mg લો (જો કોઈ એલર્જી નથી)",
						"તાપમાન ઘટાડવા હૂંફાળા પાણીથી સ્પોન્જ કરો",
						"દર 4-6 કલાકે તાપમાન તપાસો અને નોંધી લો",
					},
					WhenToSeekHelp: []string{"જો તાવ 3 દિવસથી વધુ રહે અથવા 103°F (39.4°C)થી વધી જાય"},
				},
			},
			Variants: []Variant{elderAdvice},
		},
		{
			ID:         "menstrual_cramps",
			Pattern:    []models.SymptomID{models.SymptomMenstrualCramps},
			Level:      models.SafetySafe,
			Confidence: 0.75,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Primary Dysmenorrhea (Menstrual Cramps)", "Hormonal Changes"},
					Advice: []string{
						"Apply a warm compress or heating pad to the lower abdomen for 15-20 minutes",
						"Try gentle stretching or light yoga poses such as child's pose",
						"Take ibuprofen 400mg with food if you have no stomach issues or allergies",
						"Drink warm fluids and reduce caffeine and salty food",
					},
					WhenToSeekHelp: []string{"If pain stops you from daily activities, bleeding is unusually heavy, or the pain is new after age 25"},
				},
				models.LangHindi: {
					Conditions: []string{"प्राथमिक कष्टार्तव (मासिक धर्म ऐंठन)", "हार्मोनल बदलाव"},
					Advice: []string{
						"पेट के निचले हिस्से पर 15-20 मिनट गर्म सिकाई करें",
						"हल्की स्ट्रेचिंग या बालासन जैसे हल्के योगासन करें",
						"यदि पेट की समस्या या एलर्जी नहीं है तो भोजन के साथ इबुप्रोफेन 400mg लें",
						"गर्म तरल पदार्थ पिएं और कैफीन व नमकीन भोजन कम करें",
					},
					WhenToSeekHelp: []string{"यदि दर्द दैनिक कामों में बाधा डाले, रक्तस्राव असामान्य रूप से अधिक हो, या 25 वर्ष की उम्र के बाद नया दर्द हो"},
				},
				models.LangGujarati: {
					Conditions: []string{"પ્રાથમિક ડિસમેનોરિયા (માસિક ખેંચાણ)", "હોર્મોનલ ફેરફારો"},
					Advice: []string{
						"પેટના નીચેના ભાગે 15-20 મિનિટ ગરમ શેક કરો",
						"હળવું સ્ટ્રેચિંગ અથવા બાલાસન જેવા હળવા યોગાસન કરો",
						"જો પેટની સમસ્યા કે એલર્જી ન હોય તો ભોજન સાથે આઇબુપ્રોફેન 400mg લો",
						"ગરમ પ્રવાહી પીઓ અને કેફીન તથા ખારો ખોરાક ઓછો કરો",
					},
					WhenToSeekHelp: []string{"જો દુખાવો રોજિંદા કામમાં અવરોધ કરે, રક્તસ્રાવ અસામાન્ય રીતે વધુ હોય, અથવા 25 વર્ષની ઉંમર પછી નવો દુખાવો હોય"},
				},
			},
		},
		{
			ID:         "sleep",
			Pattern:    []models.SymptomID{models.SymptomInsomnia},
			Level:      models.SafetySafe,
			Confidence: 0.65,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Insomnia", "Stress-related Sleep Disturbance"},
					Advice: []string{
						"Go to bed and wake up at the same time every day",
						"Avoid screens for 1 hour before bed and keep the bedroom dark and cool",
						"Avoid caffeine after 2 PM and heavy meals late at night",
						"Try 10 minutes of deep breathing or guided meditation before sleep",
					},
					WhenToSeekHelp: []string{"If poor sleep lasts more than 3 weeks or affects your daily functioning"},
				},
				models.LangHindi: {
					Conditions: []string{"अनिद्रा", "तनाव संबंधी नींद की गड़बड़ी"},
					Advice: []string{
						"हर दिन एक ही समय पर सोएं और जागें",
						"सोने से 1 घंटे पहले स्क्रीन से बचें और कमरे को अंधेरा व ठंडा रखें",
						"दोपहर 2 बजे के बाद कैफीन और देर रात भारी भोजन से बचें",
						"सोने से पहले 10 मिनट गहरी सांस या निर्देशित ध्यान करें",
					},
					WhenToSeekHelp: []string{"यदि खराब नींद 3 सप्ताह से अधिक रहे या दैनिक कामकाज पर असर डाले"},
				},
				models.LangGujarati: {
					Conditions: []string{"અનિદ્રા", "તણાવ સંબંધિત ઊંઘની તકલીફ"},
					Advice: []string{
						"દરરોજ એક જ સમયે સૂઈ જાઓ અને ઉઠો",
						"સૂતા પહેલા 1 કલાક સ્ક્રીનથી દૂર રહો અને રૂમ અંધારો અને ઠંડો રાખો",
						"બપોરે 2 વાગ્યા પછી કેફીન અને મોડી રાત્રે ભારે ભોજન ટાળો",
						"સૂતા પહેલા 10 મિનિટ ઊંડા શ્વાસ અથવા માર્ગદર્શિત ધ્યાન કરો",
					},
					WhenToSeekHelp: []string{"જો ખરાબ ઊંઘ 3 અઠવાડિયાથી વધુ રહે અથવા રોજિંદા કામકાજને અસર કરે"},
				},
			},
		},
		{
			ID:         "stress",
			Pattern:    []models.SymptomID{models.SymptomStress},
			Level:      models.SafetySafe,
			Confidence: 0.65,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Stress", "Anxiety Symptoms"},
					Advice: []string{
						"Practice 4-7-8 breathing: inhale for 4 seconds, hold for 7, exhale for 8, repeated 4 times",
						"Take a 10-15 minute walk outdoors",
						"Limit caffeine and news or social media before bed",
						"Talk to someone you trust about what is worrying you",
					},
					WhenToSeekHelp: []string{"If anxiety feels overwhelming, lasts for weeks, or you have thoughts of harming yourself, reach out to a mental health professional"},
				},
				models.LangHindi: {
					Conditions: []string{"तनाव", "चिंता के लक्षण"},
					Advice: []string{
						"4-7-8 श्वास का अभ्यास करें: 4 सेकंड सांस लें, 7 रोकें, 8 में छोड़ें, 4 बार दोहराएं",
						"बाहर 10-15 मिनट टहलें",
						"सोने से पहले कैफीन और समाचार या सोशल मीडिया सीमित करें",
						"जो बात आपको परेशान कर रही है उसके बारे में किसी भरोसेमंद व्यक्ति से बात करें",
					},
					WhenToSeekHelp: []string{"यदि चिंता बहुत अधिक लगे, हफ्तों तक रहे, या खुद को नुकसान पहुंचाने के विचार आएं, तो मानसिक स्वास्थ्य विशेषज्ञ से संपर्क करें"},
				},
				models.LangGujarati: {
					Conditions: []string{"તણાવ", "ચિંતાના લક્ષણો"},
					Advice: []string{
						"4-7-8 શ્વાસનો અભ્યાસ કરો: 4 સેકન્ડ શ્વાસ લો, 7 રોકો, 8માં છોડો, 4 વાર પુનરાવર્તન કરો",
						"બહાર 10-15 મિનિટ ચાલો",
						"સૂતા પહેલા કેફીન અને સમાચાર અથવા સોશિયલ મીડિયા મર્યાદિત કરો",
						"જે વાત તમને ચિંતિત કરે છે તે વિશે કોઈ વિશ્વાસુ વ્યક્તિ સાથે વાત કરો",
					},
					WhenToSeekHelp: []string{"જો ચિંતા અતિશય લાગે, અઠવાડિયાઓ સુધી રહે, અથવા પોતાને નુકસાન પહોંચાડવાના વિચારો આવે, તો માનસિક સ્વાસ્થ્ય નિષ્ણાતનો સંપર્ક કરો"},
				},
			},
		},
		{
			ID:         "stomach_pain",
			Pattern:    []models.SymptomID{models.SymptomStomachPain},
			Level:      models.SafetySafe,
			Confidence: 0.65,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"Indigestion", "Gastritis", "Gas and Bloating"},
					Advice: []string{
						"Eat small, light meals and avoid spicy, oily or acidic food",
						"Sip warm water or ginger tea",
						"Do not lie down for 2-3 hours after eating",
					},
					WhenToSeekHelp: []string{"If pain is sudden and severe, in the lower right side, or comes with fever or vomiting"},
				},
				models.LangHindi: {
					Conditions: []string{"अपच", "गैस्ट्राइटिस", "गैस और पेट फूलना"},
					Advice: []string{
						"थोड़ा और हल्का भोजन करें और मसालेदार, तैलीय या खट्टे भोजन से बचें",
						"गुनगुना पानी या अदरक की चाय धीरे-धीरे पिएं",
						"खाने के बाद 2-3 घंटे तक न लेटें",
					},
					WhenToSeekHelp: []string{"यदि दर्द अचानक और तेज हो, दाईं ओर नीचे हो, या बुखार या उल्टी के साथ हो"},
				},
				models.LangGujarati: {
					Conditions: []string{"અપચો", "ગેસ્ટ્રાઇટિસ", "ગેસ અને પેટ ફૂલવું"},
					Advice: []string{
						"થોડું અને હળવું ભોજન કરો અને મસાલેદાર, તેલવાળો અથવા ખાટો ખોરાક ટાળો",
						"હૂંફાળું પાણી અથવા આદુવાળી ચા ધીમે ધીમે પીઓ",
						"જમ્યા પછી 2-3 કલાક સુધી સૂશો નહીં",
					},
					WhenToSeekHelp: []string{"જો દુખાવો અચાનક અને તીવ્ર હોય, જમણી બાજુ નીચે હોય, અથવા તાવ કે ઉલટી સાથે હોય"},
				},
			},
			Variants: []Variant{
				{When: HasHistory(models.HistoryPregnancy), Advice: advice{
					models.LangEnglish:  "During pregnancy, contact your obstetrician about any abdominal pain",
					models.LangHindi:    "गर्भावस्था में पेट दर्द होने पर अपनी प्रसूति विशेषज्ञ से संपर्क करें",
					models.LangGujarati: "ગર્ભાવસ્થા દરમિયાન પેટના કોઈપણ દુખાવા માટે તમારા પ્રસૂતિ નિષ્ણાતનો સંપર્ક કરો",
				}},
			},
		},
		{
			ID:         FallbackRuleID,
			Level:      models.SafetySafe,
			Confidence: 0.6,
			Text: text{
				models.LangEnglish: {
					Conditions: []string{"General Wellness Concern", "Stress-related Symptoms", "Lifestyle-related Issue"},
					Advice: []string{
						"Maintain regular sleep schedule (7-8 hours daily)",
						"Follow a balanced diet with fresh fruits and vegetables",
						"Stay hydrated with 8-10 glasses of water daily",
						"Practice stress management techniques like deep breathing or meditation",
						"Monitor your symptoms and keep a health diary",
						"Regular exercise (30 minutes daily) can improve overall health",
					},
					WhenToSeekHelp: []string{"If symptoms persist or worsen, consult a healthcare professional"},
				},
				models.LangHindi: {
					Conditions: []string{"सामान्य स्वास्थ्य चिंता", "तनाव संबंधी लक्षण", "जीवनशैली संबंधी समस्या"},
					Advice: []string{
						"नियमित नींद का समय बनाए रखें (दैनिक 7-8 घंटे)",
						"ताजे फल और सब्जियों के साथ संतुलित आहार लें",
						"दैनिक 8-10 गिलास पानी के साथ हाइड्रेटेड रहें",
						"गहरी सांस या ध्यान जैसी तनाव प्रबंधन तकनीकों का अभ्यास करें",
						"अपने लक्षणों पर नजर रखें और स्वास्थ्य डायरी रखें",
						"नियमित व्यायाम (दैनिक 30 मिनट) समग्र स्वास्थ्य में सुधार कर सकता है",
					},
					WhenToSeekHelp: []string{"यदि लक्षण बने रहते हैं या बिगड़ते हैं, तो स्वास्थ्य पेशेवर से सलाह लें"},
				},
				models.LangGujarati: {
					Conditions: []string{"સામાન્ય કલ્યાણ ચિંતા", "તણાવ સંબંધિત લક્ષણો", "જીવનશૈલી સંબંધિત સમસ્યા"},
					Advice: []string{
						"નિયમિત ઊંઘનું સમયપત્રક જાળવો (દૈનિક 7-8 કલાક)",
						"તાજા ફળો અને શાકભાજી સાથે સંતુલિત આહાર લો",
						"દૈનિક 8-10 ગ્લાસ પાણી સાથે હાઇડ્રેટેડ રહો",
						"ઊંડા શ્વાસ અથવા ધ્યાન જેવી તણાવ વ્યવસ્થાપન તકનીકોનો અભ્યાસ કરો",
						"તમારા લક્ષણો પર નજર રાખો અને આરોગ્ય ડાયરી રાખો",
						"નિયમિત કસરત (દૈનિક 30 મિનિટ) એકંદર આરોગ્યમાં સુધારો કરી શકે છે",
					},
					WhenToSeekHelp: []string{"જો લક્ષણો ચાલુ રહે અથવા બગડે, તો આરોગ્ય વ્યાવસાયિકની સલાહ લો"},
				},
			},
		},
	}
}

// DefaultTable builds and validates the builtin table.
func DefaultTable() (*Table, error) {
	return NewTable(Builtin())
}
