package service

// TumorInfo is the static educational text rendered alongside a
// prediction. Informational only, not medical advice.
type TumorInfo struct {
	Description string `json:"description"`
	Details     string `json:"details"`
	Treatment   string `json:"treatment"`
	Prognosis   string `json:"prognosis"`
}

var Explanations = map[string]TumorInfo{
	"glioma": {
		Description: "Gliomas are brain tumors that develop from glial cells, which support and protect nerve cells in the brain.",
		Details:     "Gliomas are the most common type of primary brain tumor in adults. They can be slow-growing (low-grade) or fast-growing (high-grade). Symptoms may include headaches, seizures, memory problems, personality changes, and neurological deficits depending on the location.",
		Treatment:   "Treatment typically involves a combination of surgery, radiation therapy, and chemotherapy. The specific treatment plan depends on the type, grade, location, and size of the tumor.",
		Prognosis:   "Prognosis varies significantly based on the grade and location of the tumor. Low-grade gliomas may have better outcomes than high-grade ones.",
	},
	"meningioma": {
		Description: "Meningiomas are tumors that develop from the meninges, the protective membranes surrounding the brain and spinal cord.",
		Details:     "Most meningiomas are benign (non-cancerous) and grow slowly. They are more common in women and older adults. Symptoms depend on the location and size, and may include headaches, vision problems, seizures, weakness, or speech difficulties.",
		Treatment:   "Treatment options include observation (for small, asymptomatic tumors), surgical removal, and radiation therapy. Many meningiomas can be completely cured with surgical removal.",
		Prognosis:   "Generally good for benign meningiomas, especially when completely removed surgically. Most patients can return to normal activities after recovery.",
	},
	"notumor": {
		Description: "No tumor detected - the brain scan appears normal without signs of abnormal growth or masses.",
		Details:     "A normal brain MRI shows healthy brain tissue without evidence of tumors, lesions, or other abnormalities. The brain structures appear intact and properly positioned with normal signal intensity.",
		Treatment:   "No treatment is needed for a normal scan. Continue regular check-ups as recommended by your healthcare provider and report any new neurological symptoms.",
		Prognosis:   "Excellent - no abnormalities detected. Maintain regular health monitoring as advised by your physician.",
	},
	"pituitary": {
		Description: "Pituitary tumors (adenomas) are growths in the pituitary gland, a small gland at the base of the brain that controls hormone production.",
		Details:     "Most pituitary tumors are benign adenomas. They can be functioning (producing excess hormones) or non-functioning. Symptoms may include headaches, vision problems, hormonal imbalances, fatigue, and changes in growth or sexual function.",
		Treatment:   "Treatment depends on the type and size of the tumor. Options include medication to control hormone levels, surgery (often through the nose), and radiation therapy. Many pituitary tumors can be effectively managed.",
		Prognosis:   "Generally good with appropriate treatment. Many patients can achieve normal hormone levels and symptom relief with proper management.",
	},
}

// Explain returns the educational text for a predicted class.
func Explain(class string) (TumorInfo, bool) {
	info, ok := Explanations[class]
	return info, ok
}
