package export

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/models"
)

// PDFReport writes a schedule report for the project into dir and
// returns the absolute path of the generated file. Tasks are listed
// under their topics with dates and inclusive durations.
func PDFReport(p models.Project, dir string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Schedule Report: %s", p.Name))
	pdf.Ln(12)

	totalTasks := 0
	for _, topic := range p.Topics {
		tasks := tasksForTopic(p, topic.ID)
		if len(tasks) == 0 && topic.ID != models.UnassignedTopicID {
			continue
		}

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, topic.Name)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		if len(tasks) == 0 {
			pdf.Cell(0, 8, "  - No tasks.")
			pdf.Ln(8)
			continue
		}
		for _, task := range tasks {
			line := fmt.Sprintf("  - %s", task.Title)
			if calendar.Valid(task.Start) && calendar.Valid(task.End) {
				line += fmt.Sprintf("  (%s to %s, %d days)", task.Start, task.End, task.DurationDays())
			}
			pdf.MultiCell(0, 8, line, "", "", false)
			if task.Desc != "" {
				pdf.SetFont("Arial", "I", 10)
				pdf.MultiCell(0, 6, "      "+task.Desc, "", "", false)
				pdf.SetFont("Arial", "", 12)
			}
			totalTasks++
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Tasks: %d", totalTasks))

	filename := filepath.Join(dir, fmt.Sprintf("schedule_%s.pdf", calendar.Today()))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return abs, nil
}

func tasksForTopic(p models.Project, topicID string) []models.Task {
	var out []models.Task
	for _, task := range p.Tasks {
		if task.TopicID == topicID {
			out = append(out, task)
		}
	}
	return out
}
