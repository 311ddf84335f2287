package constants

// Presentation is one entry of the fixed clinical-presentation taxonomy.
// Like the module list this is a closed set: the extraction prompt embeds it
// verbatim and persisted rows reference the codes, so entries are append-only.
type Presentation struct {
	ID   int
	Name string
}

var Presentations = []Presentation{
	{1, "Abdominal distension"},
	{2, "Abdominal mass"},
	{3, "Acute abdominal pain"},
	{4, "Chronic abdominal pain"},
	{5, "Abnormal cervical smear result"},
	{6, "Abnormal development or developmental delay"},
	{7, "Abnormal eating or exercising behaviour"},
	{8, "Abnormal involuntary movements"},
	{9, "Abnormal urinalysis"},
	{10, "Acute and chronic pain management"},
	{11, "Acute change in or loss of vision"},
	{12, "Acute joint pain or swelling"},
	{13, "Acute kidney injury"},
	{14, "Acute rash"},
	{15, "Addiction"},
	{16, "Allergies"},
	{17, "Altered sensation, numbness and tingling"},
	{18, "Amenorrhoea"},
	{19, "Anaphylaxis"},
	{20, "Anosmia"},
	{21, "Anxiety, phobias and obsessive-compulsive disorder"},
	{22, "Ascites"},
	{23, "Auditory hallucinations"},
	{24, "Back pain"},
	{25, "Behaviour or personality change"},
	{26, "Behavioural difficulties in childhood"},
	{27, "Bites and stings"},
	{28, "Blackouts and faints"},
	{29, "Bleeding from the lower GI tract"},
	{30, "Bleeding from the upper GI tract"},
	{31, "Bleeding antepartum"},
	{32, "Bleeding postpartum"},
	{33, "Bone pain"},
	{34, "Breast lump"},
	{35, "Breast tenderness or pain"},
	{36, "Breathlessness"},
	{37, "Bruising"},
	{38, "Burns"},
	{39, "Cardiorespiratory arrest"},
	{40, "Change in bowel habit"},
	{41, "Change in stool colour"},
	{42, "Chest pain"},
	{43, "Child abuse"},
	{44, "Chronic joint pain or stiffness"},
	{45, "Chronic kidney disease"},
	{46, "Chronic rash"},
	{47, "Cold, painful, pale, pulseless leg or foot"},
	{48, "Confusion"},
	{49, "Congenital abnormalities"},
	{50, "Constipation"},
	{51, "Contraception request or advice"},
	{52, "Cough"},
	{53, "Crying baby"},
	{54, "Cyanosis"},
	{55, "Deteriorating patient"},
	{56, "Diarrhoea"},
	{57, "Difficulty with breastfeeding"},
	{58, "Diplopia"},
	{59, "Dizziness"},
	{60, "Driving advice"},
	{61, "Dysmorphic child"},
	{62, "Dyspareunia"},
	{63, "Dysphagia"},
	{64, "Dysuria"},
	{65, "Ear and nasal discharge"},
	{66, "Elation or elated mood"},
	{67, "Electrolyte abnormalities"},
	{68, "End of life care or symptoms of terminal illness"},
	{69, "Epistaxis"},
	{70, "Erectile dysfunction"},
	{71, "Eye pain or discomfort"},
	{72, "Eye trauma"},
	{73, "Facial pain"},
	{74, "Facial weakness"},
	{75, "Faecal incontinence"},
	{76, "Falls"},
	{77, "Family history of possible genetic disorder"},
	{78, "Fever"},
	{79, "Fixed abnormal beliefs or delusions"},
	{80, "Flashes and floaters in visual fields"},
	{81, "Fit notes"},
	{82, "Fits and seizures"},
	{83, "Food intolerance"},
	{84, "Foreign body in eye"},
	{85, "Fractures"},
	{86, "Frailty"},
	{87, "Gradual change in or loss of vision"},
	{88, "Gynaecomastia"},
	{89, "Haematuria"},
	{90, "Haemoptysis"},
	{91, "Head injury"},
	{92, "Headache"},
	{93, "Hearing loss"},
	{94, "Heart murmurs"},
	{95, "Hoarseness and voice change"},
	{96, "Hyperemesis"},
	{97, "Hypertension"},
	{98, "Hypotension"},
	{99, "Immobility"},
	{100, "Incidental findings"},
	{101, "Infant feeding problems"},
	{102, "Intestinal obstruction and ileus"},
	{103, "Jaundice"},
	{104, "Labour"},
	{105, "Lacerations"},
	{106, "Learning disability"},
	{107, "Leg swelling"},
	{108, "Limb claudication"},
	{109, "Limb weakness"},
	{110, "Limp"},
	{111, "Loin pain"},
	{112, "Loss of libido"},
	{113, "Loss of red reflex"},
	{114, "Low blood pressure reading"},
	{115, "Low mood or affective problems"},
	{116, "Lump in groin"},
	{117, "Lymphadenopathy"},
	{118, "Massive haemorrhage"},
	{119, "Melaena"},
	{120, "Memory loss"},
	{121, "Menopausal problems"},
	{122, "Menstrual problems"},
	{123, "Mental capacity concerns"},
	{124, "Mental health problems in pregnancy or postpartum"},
	{125, "Misplaced nasogastric tube"},
	{126, "Muscle pain or myalgia"},
	{127, "Musculoskeletal deformities"},
	{128, "Nail abnormalities"},
	{129, "Nasal obstruction"},
	{130, "Nausea"},
	{131, "Neck lump"},
	{132, "Neck pain or stiffness"},
	{133, "Neonatal death or cot death"},
	{134, "Neuromuscular weakness"},
	{135, "Night sweats"},
	{136, "Nipple discharge"},
	{137, "Normal pregnancy and antenatal care"},
	{138, "Obesity"},
	{139, "Oliguria"},
	{140, "Organomegaly"},
	{141, "Overdose"},
	{142, "Painful ear"},
	{143, "Painful sexual intercourse"},
	{144, "Painful swollen leg"},
	{145, "Pallor"},
	{146, "Palpitations"},
	{147, "Pelvic mass"},
	{148, "Pelvic pain"},
	{149, "Perianal symptoms"},
	{150, "Peripheral oedema and ankle swelling"},
	{151, "Petechial rash"},
	{152, "Pleural effusion"},
	{153, "Poisoning"},
	{154, "Polydipsia or thirst"},
	{155, "Polyuria"},
	{156, "Post-surgical care and complications"},
	{157, "Pregnancy risk assessment"},
	{158, "Prematurity"},
	{159, "Pressure of speech"},
	{160, "Pruritus"},
	{161, "Ptosis"},
	{162, "Pubertal development problems"},
	{163, "Purpura"},
	{164, "Red eye"},
	{165, "Reduced or loss of consciousness"},
	{166, "Scarring"},
	{167, "Scrotal or testicular pain or swelling"},
	{168, "Self-harm"},
	{169, "Sensory loss"},
	{170, "Shock"},
	{171, "Skin lesion"},
	{172, "Skin or subcutaneous lump"},
	{173, "Skin ulcers"},
	{174, "Sleep problems"},
	{175, "Small for gestational age or large for gestational age"},
	{176, "Snoring"},
	{177, "Soft tissue injury"},
	{178, "Somatisation and medically unexplained symptoms"},
	{179, "Sore throat"},
	{180, "Speech and language problems"},
	{181, "Squint"},
	{182, "Stridor"},
	{183, "Struggling to cope at home"},
	{184, "Subfertility"},
	{185, "Substance misuse"},
	{186, "Suicidal thoughts"},
	{187, "Swallowing problems"},
	{188, "Syncope"},
	{189, "Threats to harm others"},
	{190, "Tinnitus"},
	{191, "Tiredness and fatigue"},
	{192, "Trauma"},
	{193, "Travel health advice"},
	{194, "Tremor"},
	{195, "Unsteadiness"},
	{196, "Unwanted pregnancy and termination"},
	{197, "Urethral discharge and genital ulcers"},
	{198, "Urinary incontinence"},
	{199, "Urinary retention"},
	{200, "Urinary symptoms"},
	{201, "Vaccination advice"},
	{202, "Vaginal discharge"},
	{203, "Vaginal prolapse"},
	{204, "Vertigo"},
	{205, "Visual hallucinations"},
	{206, "Vomiting"},
	{207, "Vulval itching or lesion"},
	{208, "Weight gain"},
	{209, "Weight loss"},
	{210, "Wellbeing checks"},
	{211, "Wheeze"},
	{212, "Wound care and healing problems"},
}

var presentationByID = func() map[int]string {
	m := make(map[int]string, len(Presentations))
	for _, p := range Presentations {
		m[p.ID] = p.Name
	}
	return m
}()

func PresentationName(id int) (string, bool) {
	name, ok := presentationByID[id]
	return name, ok
}

func IsValidPresentationID(id int) bool {
	_, ok := presentationByID[id]
	return ok
}
