package patient

import "fmt"

const promptTemplate = `You are a telehealth AI. The patient data is as follows:
- Blood Pressure: %s
- Blood Glucose: %s
- Stress Level: %s (out of 10)

Evaluate the patient's health status and provide advice, going through each vital sign.
Avoid chain-of-thought or hidden reasoning.`

// BuildPrompt renders a Record into the model instruction. Missing
// fields render as empty values; absence is not an error here.
func BuildPrompt(rec Record) string {
	return fmt.Sprintf(promptTemplate, rec.BloodPressure, rec.BloodGlucose, rec.StressLevel)
}
