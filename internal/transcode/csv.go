// Package transcode round-trips task and topic records through the CSV
// table format shared with spreadsheet tools. Export is bit-exact:
// UTF-8 with a leading BOM, fixed column order, RFC 4180 quoting.
// Import recognizes the English headers and their Hebrew equivalents.
package transcode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/models"
	"github.com/Elish84/Gantt/internal/util"
)

var columns = []string{"topic", "title", "start", "end", "duration_days", "desc"}

// headerAliases maps every accepted header spelling, exact after
// trimming, to its canonical column.
var headerAliases = map[string]string{
	"topic":         "topic",
	"נושא":          "topic",
	"title":         "title",
	"כותרת":         "title",
	"start":         "start",
	"תאריך התחלה":   "start",
	"end":           "end",
	"תאריך סיום":    "end",
	"duration_days": "duration_days",
	"משך (ימים)":    "duration_days",
	"desc":          "desc",
	"תיאור":         "desc",
}

const bom = "\ufeff"

// Row is one parsed CSV record, not yet resolved against a project.
type Row struct {
	Topic        string
	Title        string
	Start        string
	End          string
	DurationDays string
	Desc         string
}

// Export serializes a project's tasks to CSV. Topic names replace ids
// so the file stands alone; duration is derived, inclusive of both
// bounds.
func Export(p models.Project) []byte {
	topicsByID := make(map[string]models.Topic, len(p.Topics))
	for _, t := range p.Topics {
		topicsByID[t.ID] = t
	}

	var buf bytes.Buffer
	buf.WriteString(bom)
	w := csv.NewWriter(&buf)
	_ = w.Write(columns)
	for _, task := range p.Tasks {
		topic, ok := topicsByID[task.TopicID]
		if !ok {
			topic = models.UnassignedTopic()
		}
		duration := ""
		if calendar.Valid(task.Start) && calendar.Valid(task.End) {
			duration = strconv.Itoa(calendar.Duration(task.Start, task.End))
		}
		_ = w.Write([]string{topic.Name, task.Title, task.Start, task.End, duration, task.Desc})
	}
	w.Flush()
	return buf.Bytes()
}

// Parse reads arbitrary CSV into rows. The header may use English or
// Hebrew column names in any order; \r\n line endings and trailing
// blank rows are tolerated. A malformed file fails as a whole.
func Parse(data []byte) ([]Row, error) {
	data = bytes.TrimPrefix(data, []byte(bom))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	for len(records) > 0 && blankRecord(records[len(records)-1]) {
		records = records[:len(records)-1]
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := make(map[string]int)
	for i, h := range records[0] {
		if canonical, ok := headerAliases[strings.TrimSpace(h)]; ok {
			if _, taken := index[canonical]; !taken {
				index[canonical] = i
			}
		}
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			Topic:        field(record, "topic"),
			Title:        field(record, "title"),
			Start:        field(record, "start"),
			End:          field(record, "end"),
			DurationDays: field(record, "duration_days"),
			Desc:         field(record, "desc"),
		})
	}
	return rows, nil
}

// Apply resolves rows into the project: topics are matched by exact
// name or synthesized with a slug id and a deterministic color, and a
// missing end date is derived from start plus duration. Rows without a
// title or a resolvable date pair are skipped silently. Returns the
// number of tasks added.
func Apply(p *models.Project, rows []Row) int {
	nameToID := make(map[string]string, len(p.Topics))
	for _, t := range p.Topics {
		nameToID[t.Name] = t.ID
	}

	added := 0
	for _, row := range rows {
		if row.Title == "" {
			continue
		}

		topicID := models.UnassignedTopicID
		if row.Topic != "" {
			if id, ok := nameToID[row.Topic]; ok {
				topicID = id
			} else {
				id := util.Slugify(row.Topic)
				if p.TopicByID(id) == nil {
					p.Topics = append(p.Topics, models.Topic{
						ID:    id,
						Name:  row.Topic,
						Color: util.ColorFromName(row.Topic),
					})
				}
				topicID = id
				nameToID[row.Topic] = id
			}
		}

		start, end := row.Start, row.End
		if start != "" && end == "" {
			if dur, err := strconv.Atoi(row.DurationDays); err == nil && dur > 0 {
				end = calendar.AddDays(start, dur-1)
			}
		}
		if !calendar.Valid(start) || !calendar.Valid(end) {
			continue
		}

		p.Tasks = append(p.Tasks, models.Task{
			ID:      uuid.NewString(),
			TopicID: topicID,
			Title:   row.Title,
			Desc:    row.Desc,
			Start:   start,
			End:     end,
		})
		added++
	}
	return added
}

// Import parses and applies in one step. Parse failures commit
// nothing; individually unresolvable rows are dropped per row.
func Import(p *models.Project, data []byte) (int, error) {
	rows, err := Parse(data)
	if err != nil {
		return 0, err
	}
	return Apply(p, rows), nil
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
