package generator

import "fmt"

// The template table is fixture data, not content generation: each
// branch carries one hard-coded question shape with exactly four
// options, parameterized by topic and exam type where the text calls
// for it.

func (b TemplateBranch) render(num int, examType, topic string) (text string, options []string, explanation string) {
	switch b {
	case BranchCivilServices:
		text = fmt.Sprintf("Which of the following best describes %s in the context of Indian governance?", topic)
		options = []string{
			"It is a fundamental right guaranteed by Article 19 of the Constitution",
			"It is a directive principle of state policy mentioned in Part IV",
			"It is a provision added through the 73rd Constitutional Amendment",
			"It is a feature introduced by the Government of India Act, 1935",
		}
		explanation = fmt.Sprintf("This question tests your understanding of %s in relation to the Indian Constitution and governance structure.", topic)

	case BranchStaffSelection:
		text = "If A can do a work in 12 days and B can do the same work in 15 days, how many days will they take to complete the work together?"
		options = []string{
			"6.67 days",
			"6.5 days",
			"7.2 days",
			"8 days",
		}
		explanation = "Using the formula (A×B)/(A+B), where A and B are the number of days taken by the individuals: (12×15)/(12+15) = 180/27 = 6.67 days"

	case BranchEngineeringMedical:
		text = fmt.Sprintf("In the context of %s, which of the following statements is correct?", topic)
		options = []string{
			"Force is directly proportional to displacement",
			"Work done in an adiabatic process is zero",
			"Impulse is a scalar quantity",
			"Momentum cannot be conserved in inelastic collisions",
		}
		explanation = fmt.Sprintf("The correct answer relates to the core principles of %s as covered in the %s syllabus.", topic, examType)

	default:
		text = fmt.Sprintf("Question %d about %s for %s: Which of the following statements is true?", num, topic, examType)
		options = []string{
			fmt.Sprintf("Option A: First possible answer related to %s", topic),
			fmt.Sprintf("Option B: Second possible answer related to %s", topic),
			fmt.Sprintf("Option C: Third possible answer related to %s", topic),
			fmt.Sprintf("Option D: Fourth possible answer related to %s", topic),
		}
		explanation = fmt.Sprintf("Explanation for question %d: The correct answer is based on key concepts of %s as relevant to %s.", num, topic, examType)
	}

	return text, options, explanation
}
