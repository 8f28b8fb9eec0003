package transcode

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/Elish84/Gantt/internal/models"
)

func TestExportHeaderAndBOM(t *testing.T) {
	p := models.NewProject("x")
	out := Export(p)
	if !bytes.HasPrefix(out, []byte("\ufeff")) {
		t.Error("export must start with a UTF-8 BOM")
	}
	first := strings.SplitN(strings.TrimPrefix(string(out), "\ufeff"), "\n", 2)[0]
	if first != "topic,title,start,end,duration_days,desc" {
		t.Errorf("header = %q", first)
	}
}

func TestExportQuoting(t *testing.T) {
	p := models.NewProject("x")
	p.Tasks = []models.Task{{
		ID: "1", TopicID: models.UnassignedTopicID,
		Title: `say "hi", twice`, Desc: "line1\nline2",
		Start: "2024-01-10", End: "2024-01-12",
	}}
	out := string(Export(p))
	if !strings.Contains(out, `"say ""hi"", twice"`) {
		t.Errorf("quotes not doubled:\n%s", out)
	}
	if !strings.Contains(out, "\"line1\nline2\"") {
		t.Errorf("newline field not quoted:\n%s", out)
	}
	if !strings.Contains(out, ",3,") {
		t.Errorf("inclusive duration missing:\n%s", out)
	}
}

func TestParseBilingualHeaders(t *testing.T) {
	data := "נושא,כותרת,תאריך התחלה,תאריך סיום,משך (ימים),תיאור\n" +
		"Infra,Provision,2024-01-10,2024-01-12,3,servers\n"
	rows, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	want := Row{Topic: "Infra", Title: "Provision", Start: "2024-01-10", End: "2024-01-12", DurationDays: "3", Desc: "servers"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestParseHeaderOrderIndependent(t *testing.T) {
	data := "desc,end,start,title,topic\nnotes,2024-01-12,2024-01-10,Provision,Infra\n"
	rows, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Title != "Provision" || rows[0].Topic != "Infra" || rows[0].Desc != "notes" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestParseCRLFAndTrailingBlanks(t *testing.T) {
	data := "topic,title,start,end,duration_days,desc\r\nInfra,Provision,2024-01-10,2024-01-12,,\r\n,,,,,\r\n\r\n"
	rows, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1 after dropping blanks", len(rows))
	}
}

func TestParseMalformedFails(t *testing.T) {
	if _, err := Parse([]byte("topic,title\n\"unterminated,x\n")); err == nil {
		t.Error("expected a parse error for an unterminated quote")
	}
}

func TestApplyDerivesEndFromDuration(t *testing.T) {
	p := models.NewProject("x")
	added := Apply(&p, []Row{{Title: "t", Start: "2024-01-10", DurationDays: "3"}})
	if added != 1 {
		t.Fatalf("added = %d", added)
	}
	if got := p.Tasks[0].End; got != "2024-01-12" {
		t.Errorf("derived end = %s, want 2024-01-12", got)
	}
	if p.Tasks[0].DurationDays() != 3 {
		t.Errorf("duration = %d, want 3", p.Tasks[0].DurationDays())
	}
}

func TestApplySkipsUnresolvableRows(t *testing.T) {
	p := models.NewProject("x")
	rows := []Row{
		{Title: "", Start: "2024-01-10", End: "2024-01-12"},   // no title
		{Title: "no dates"},                                   // no dates
		{Title: "no end", Start: "2024-01-10"},                // underivable end
		{Title: "bad date", Start: "01/10/2024", End: "x"},    // unparsable
		{Title: "ok", Start: "2024-01-10", End: "2024-01-12"}, // keeps
	}
	if added := Apply(&p, rows); added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if len(p.Tasks) != 1 || p.Tasks[0].Title != "ok" {
		t.Errorf("tasks = %+v", p.Tasks)
	}
}

func TestApplySynthesizesTopic(t *testing.T) {
	p := models.NewProject("x")
	Apply(&p, []Row{
		{Topic: "New Team", Title: "a", Start: "2024-01-10", End: "2024-01-10"},
		{Topic: "New Team", Title: "b", Start: "2024-01-11", End: "2024-01-11"},
	})
	topic := p.TopicByID("new-team")
	if topic == nil {
		t.Fatal("topic not synthesized")
	}
	if topic.Color == "" {
		t.Error("synthesized topic needs a color")
	}
	count := 0
	for _, tp := range p.Topics {
		if tp.ID == "new-team" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("topic synthesized %d times, want once", count)
	}
	for _, task := range p.Tasks {
		if task.TopicID != "new-team" {
			t.Errorf("task %q topic = %q", task.Title, task.TopicID)
		}
	}
}

func TestApplyMatchesExistingTopicByName(t *testing.T) {
	p := models.NewProject("x")
	if _, err := p.AddTopic("Infra", "#123123"); err != nil {
		t.Fatal(err)
	}
	Apply(&p, []Row{{Topic: "Infra", Title: "t", Start: "2024-01-10", End: "2024-01-10"}})
	if got := p.Tasks[0].TopicID; got != "infra" {
		t.Errorf("topic id = %q", got)
	}
	if len(p.Topics) != 2 {
		t.Errorf("no new topic expected, have %d", len(p.Topics))
	}
}

func TestRoundTrip(t *testing.T) {
	src := models.NewProject("roadmap")
	if _, err := src.AddTopic("Build", "#1f77b4"); err != nil {
		t.Fatal(err)
	}
	tasks := []models.Task{
		{TopicID: "build", Title: "scaffold, phase \"one\"", Desc: "multi\nline", Start: "2024-04-02", End: "2024-04-06"},
		{TopicID: "build", Title: "integrate", Start: "2024-04-10", End: "2024-04-10"},
		{TopicID: models.UnassignedTopicID, Title: "triage", Desc: "נושא פתוח", Start: "2024-04-01", End: "2024-04-03"},
	}
	for _, task := range tasks {
		if _, err := src.AddTask(task); err != nil {
			t.Fatal(err)
		}
	}

	dst := models.NewProject("imported")
	n, err := Import(&dst, Export(src))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != len(tasks) {
		t.Fatalf("imported %d of %d tasks", n, len(tasks))
	}

	type tuple struct{ topic, title, start, end, desc string }
	collect := func(p models.Project) []tuple {
		var out []tuple
		for _, task := range p.Tasks {
			name := models.UnassignedTopicName
			if topic := p.TopicByID(task.TopicID); topic != nil {
				name = topic.Name
			}
			out = append(out, tuple{name, task.Title, task.Start, task.End, task.Desc})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].title < out[j].title })
		return out
	}
	got, want := collect(dst), collect(src)
	if len(got) != len(want) {
		t.Fatalf("tuple counts differ: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tuple %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
