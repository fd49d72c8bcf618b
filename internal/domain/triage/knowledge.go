package triage

// knowledgeEntry is one static, read-only row of the symptom knowledge table.
type knowledgeEntry struct {
	Phrase     string
	Categories []string
	Tier       Severity
	Conditions []string
}

// knowledgeTable is matched by substring in declaration order: the first
// entry whose phrase contains the input (or is contained by it) wins.
// Entries are declared most severe first so that ambiguous mentions resolve
// toward the more cautious interpretation. Do not reorder casually — match
// results depend on it.
var knowledgeTable = []knowledgeEntry{
	{"loss of consciousness", []string{"neurological"}, SeverityEmergency, []string{"fainting", "seizure", "cardiac event"}},
	{"chest pain", []string{"cardiac"}, SeverityHigh, []string{"heart attack", "angina", "muscle strain"}},
	{"shortness of breath", []string{"respiratory"}, SeverityHigh, []string{"asthma", "pneumonia", "heart failure"}},
	{"palpitations", []string{"cardiac"}, SeverityHigh, []string{"arrhythmia", "anxiety", "thyroid disorder"}},
	{"numbness", []string{"neurological"}, SeverityHigh, []string{"nerve compression", "stroke", "circulation problem"}},
	{"fever", []string{"general", "infectious"}, SeverityModerate, []string{"flu", "infection", "covid-19"}},
	{"vomiting", []string{"gastrointestinal"}, SeverityModerate, []string{"food poisoning", "gastroenteritis"}},
	{"diarrhea", []string{"gastrointestinal"}, SeverityModerate, []string{"gastroenteritis", "food poisoning"}},
	{"abdominal pain", []string{"gastrointestinal"}, SeverityModerate, []string{"gastritis", "appendicitis", "indigestion"}},
	{"dizziness", []string{"neurological"}, SeverityModerate, []string{"vertigo", "low blood pressure", "anemia"}},
	{"swelling", []string{"general"}, SeverityModerate, []string{"injury", "infection", "allergic reaction"}},
	{"blurred vision", []string{"neurological", "ocular"}, SeverityModerate, []string{"migraine", "eye strain", "diabetes"}},
	{"headache", []string{"neurological"}, SeverityLow, []string{"tension headache", "migraine", "dehydration"}},
	{"cough", []string{"respiratory"}, SeverityLow, []string{"common cold", "bronchitis", "covid-19"}},
	{"sore throat", []string{"respiratory"}, SeverityLow, []string{"pharyngitis", "common cold"}},
	{"nausea", []string{"gastrointestinal"}, SeverityLow, []string{"food poisoning", "gastritis", "migraine"}},
	{"back pain", []string{"musculoskeletal"}, SeverityLow, []string{"muscle strain", "sciatica"}},
	{"joint pain", []string{"musculoskeletal"}, SeverityLow, []string{"arthritis", "injury"}},
	{"rash", []string{"dermatological"}, SeverityLow, []string{"allergic reaction", "eczema", "contact dermatitis"}},
	{"fatigue", []string{"general"}, SeverityLow, []string{"anemia", "sleep deprivation", "depression"}},
	{"tired", []string{"general"}, SeverityLow, []string{"sleep deprivation", "anemia"}},
}

// emergencyKeywords short-circuits classification before any table lookup.
// Maintained independently of the table tiers; both paths stay in place.
var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"sudden confusion",
	"loss of consciousness",
	"severe bleeding",
	"stroke symptoms",
	"severe allergic reaction",
	"suicidal thoughts",
}

// symptomVocabulary is the fixed word list used by the naive message scanner.
// Multi-word entries are checked before their single-word components would
// be reported separately.
var symptomVocabulary = []string{
	"chest pain",
	"fever",
	"headache",
	"cough",
	"nausea",
	"vomiting",
	"dizzy",
	"tired",
	"rash",
	"pain",
}

// Fixed recommendation blocks. Assembly order is severity block, fever,
// cough, known conditions, medications.
var severityRecommendations = map[Severity][]string{
	SeverityHigh: {
		"Seek medical attention within the next 24 hours.",
		"Contact your primary care provider or visit an urgent care clinic today.",
		"Monitor your symptoms closely and call emergency services if they worsen suddenly.",
	},
	SeverityModerate: {
		"Schedule an appointment with your healthcare provider within the next few days.",
		"Rest and avoid strenuous activity until symptoms improve.",
		"Keep a log of your symptoms, noting when they occur and how long they last.",
	},
	SeverityLow: {
		"Your symptoms can usually be managed with rest and self-care at home.",
		"Stay hydrated and get plenty of sleep.",
		"See a healthcare provider if symptoms persist beyond a week or get worse.",
	},
}

var feverRecommendations = []string{
	"Monitor your temperature every 4 to 6 hours.",
	"Drink plenty of fluids to avoid dehydration.",
	"Take an over-the-counter fever reducer as directed if needed.",
}

var coughRecommendations = []string{
	"Honey and warm fluids can soothe an irritated throat.",
	"Avoid smoke and other airway irritants.",
	"Seek care if the cough lasts more than three weeks or brings up blood.",
}

var conditionRecommendations = []string{
	"Consider how these symptoms may interact with your existing conditions.",
	"Share this symptom summary with the provider who manages your ongoing care.",
}

var medicationRecommendations = []string{
	"Check whether any of your current medications list these symptoms as side effects.",
	"Consult a pharmacist or your provider before adding any new medication.",
}

const (
	urgentActionText     = "Seek emergency medical care immediately. Do not wait to see if symptoms improve."
	emergencyContactText = "Call 911 or your local emergency number now."
	disclaimerText       = "This analysis is for informational purposes only and is not a medical diagnosis. Always consult a qualified healthcare professional about your symptoms."
)

var emergencyActions = []string{
	"Call 911 or your local emergency number immediately.",
	"Do not drive yourself to the hospital.",
	"Stay with someone until help arrives.",
	"Gather a list of current medications for the responders.",
	"Unlock the door so responders can reach you.",
}
