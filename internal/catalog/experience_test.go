package catalog

import "testing"

func TestSkills_SortedUnique(t *testing.T) {
	skills := Skills()
	for i := 1; i < len(skills); i++ {
		if skills[i-1] >= skills[i] {
			t.Fatalf("skills not sorted and unique: %v", skills)
		}
	}
	found := false
	for _, s := range skills {
		if s == "NLP" {
			found = true
		}
	}
	if !found {
		t.Error("expected NLP among skills")
	}
}

func TestSearchExperience_Query(t *testing.T) {
	got := SearchExperience("fpga", nil)
	if len(got) != 1 || got[0].ID != "exp5" {
		t.Errorf("got %+v", got)
	}
	got = SearchExperience("modulo", nil)
	if len(got) != 1 || got[0].ID != "exp3" {
		t.Errorf("company search got %+v", got)
	}
}

func TestSearchExperience_SkillsOR(t *testing.T) {
	got := SearchExperience("", []string{"Quantization", "FastAPI"})
	if len(got) != 2 || got[0].ID != "exp1" || got[1].ID != "exp5" {
		t.Errorf("got %+v", got)
	}
}

func TestSearchExperience_QueryAndSkills(t *testing.T) {
	got := SearchExperience("research", []string{"NLP"})
	if len(got) != 2 {
		t.Errorf("got %d, want 2 (exp2, exp3)", len(got))
	}
	if got := SearchExperience("", nil); len(got) != len(Experiences()) {
		t.Errorf("empty search got %d", len(got))
	}
}

func TestProjects(t *testing.T) {
	if got := len(Projects()); got != 3 {
		t.Errorf("got %d projects", got)
	}
}
