package usecase

import "taskpilot/pkg/llmprovider"

// systemInstruction constrains the model to the candidate schema. The
// repair step in extract.go still normalizes whatever comes back, so the
// prompt aims for the common case, not for perfection.
const systemInstruction = `You are a task extraction assistant. Extract every actionable task from the user's text.

For each task produce:
- "title": a short imperative title (required)
- "startTime": start time of day as "HH:MM" in 24-hour format, aligned to 15-minute boundaries (00, 15, 30, 45)
- "duration": estimated duration in minutes
- "priority": one of "high", "medium", "low"

Rules:
- Never generate a description; leave it empty.
- If the text gives no time for a task, choose a sensible time of day for that kind of task.
- Respond by calling the extract_tasks function with all extracted tasks.`

// extractTasksTool is the function declaration the model is asked to call.
func extractTasksTool() llmprovider.Tool {
	return llmprovider.Tool{
		Name:        "extract_tasks",
		Description: "Report the tasks extracted from the user's text.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"tasks": map[string]interface{}{
					"type":        "array",
					"description": "All tasks found in the text.",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"title": map[string]interface{}{
								"type":        "string",
								"description": "Short imperative task title.",
							},
							"startTime": map[string]interface{}{
								"type":        "string",
								"description": "Start time of day, HH:MM, 24-hour, 15-minute aligned.",
							},
							"duration": map[string]interface{}{
								"type":        "integer",
								"description": "Estimated duration in minutes.",
							},
							"priority": map[string]interface{}{
								"type": "string",
								"enum": []string{"high", "medium", "low"},
							},
						},
						"required": []string{"title", "startTime", "duration", "priority"},
					},
				},
			},
			"required": []string{"tasks"},
		},
	}
}
