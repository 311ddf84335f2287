package constants

// ClinicalModule is one entry of the fixed module taxonomy. The ID space is
// not contiguous; gaps are historical and must be preserved because the
// persisted rows reference these codes.
type ClinicalModule struct {
	ID   int
	Name string
}

var ClinicalModules = []ClinicalModule{
	{1, "Cardiovascular"},
	{2, "Respiratory"},
	{3, "Gastrointestinal (Including Liver)"},
	{4, "Child Health"},
	{5, "Neurosciences"},
	{6, "Adult Health"},
	{7, "Renal and Urology"},
	{9, "Endocrine and Metabolic"},
	{10, "Ear, Nose and Throat"},
	{11, "Acute and Emergency"},
	{12, "General Practice and Primary Healthcare"},
	{13, "Clinical Haematology"},
	{14, "Mental Health"},
	{15, "Clinical Imaging"},
	{16, "Ophthalmology"},
	{17, "Gynaecology"},
	{18, "Physical Rehabilitation"},
	{19, "Social and Population Health"},
	{20, "Infectious Diseases"},
	{21, "Clinical Pharmacology and Therapeutics"},
	{22, "Paediatric"},
	{23, "ENT"},
	{24, "Dermatology"},
	{25, "Vaccination"},
	{26, "Perioperative Medicine and Anaesthesia"},
	{27, "Clinical Biochemistry"},
	{28, "Surgery"},
	{29, "General Surgery"},
	{30, "Obstetrics and Gynaecology"},
	{31, "Genetics and Genomics"},
	{32, "Sexual Health"},
	{33, "Endocrine and Metabolic"},
	{34, "Paediatrics"},
	{36, "Musculoskeletal"},
	{37, "Cancer"},
	{38, "Emergency Medicine"},
	{39, "Palliative and End of Life Care"},
	{40, "Emergency and Acute Medicine"},
	{41, "Pain Management"},
	{42, "Laboratory Haematology"},
	{46, "Autoimmune and Immunology"},
	{47, "Rheumatology"},
	{48, "Nutrition and Dietetics"},
	{49, "Radiology"},
	{50, "Oncology"},
	{55, "Coronavirus"},
}

var moduleByID = func() map[int]string {
	m := make(map[int]string, len(ClinicalModules))
	for _, cm := range ClinicalModules {
		m[cm.ID] = cm.Name
	}
	return m
}()

// ModuleName returns the module name for an ID, and whether the ID is part of
// the taxonomy.
func ModuleName(id int) (string, bool) {
	name, ok := moduleByID[id]
	return name, ok
}

func IsValidModuleID(id int) bool {
	_, ok := moduleByID[id]
	return ok
}
