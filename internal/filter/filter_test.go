package filter

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"

	"jobtools-engine/internal/domain"
)

func mkRecord(id, title, desc string, wm domain.WorkModel, jt domain.JobType) domain.JobRecord {
	return domain.New(domain.Fields{
		ID: id, Title: title, Description: desc, WorkModel: wm, JobType: jt,
	})
}

func terms(t *testing.T, raw ...string) []domain.Term {
	t.Helper()
	ts, err := domain.ParseTerms(raw)
	if err != nil {
		t.Fatalf("ParseTerms(%v): %v", raw, err)
	}
	return ts
}

func TestKeep(t *testing.T) {
	rec := mkRecord("r1", "Software Engineer", "Distributed systems in Go. Remote friendly.",
		domain.WorkRemote, domain.JobFullTime)

	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "empty config keeps everything", cfg: Config{}, want: true},
		{
			name: "work model included",
			cfg:  Config{WorkModels: mapset.NewSet(domain.WorkRemote, domain.WorkHybrid)},
			want: true,
		},
		{
			name: "work model excluded",
			cfg:  Config{WorkModels: mapset.NewSet(domain.WorkOnSite)},
			want: false,
		},
		{
			name: "job type excluded",
			cfg:  Config{JobTypes: mapset.NewSet(domain.JobInternship)},
			want: false,
		},
		{
			name: "all requisites present",
			cfg:  Config{Requisites: terms(t, "engineer", "distributed")},
			want: true,
		},
		{
			name: "one requisite missing",
			cfg:  Config{Requisites: terms(t, "engineer", "haskell")},
			want: false,
		},
		{
			name: "blacklist hit",
			cfg:  Config{Blacklist: terms(t, "remote friendly")},
			want: false,
		},
		{
			name: "blacklist wins over requisite",
			cfg: Config{
				Requisites: terms(t, "engineer"),
				Blacklist:  terms(t, "engineer"),
			},
			want: false,
		},
		{
			name: "title scope ignores description",
			cfg:  Config{Scope: domain.ScopeTitle, Requisites: terms(t, "distributed")},
			want: false,
		},
		{
			name: "description scope",
			cfg:  Config{Scope: domain.ScopeDescription, Requisites: terms(t, "distributed")},
			want: true,
		},
		{
			name: "case insensitive",
			cfg:  Config{Requisites: terms(t, "ENGINEER")},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keep(rec, tt.cfg); got != tt.want {
				t.Errorf("Keep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	records := []domain.JobRecord{
		mkRecord("a", "Engineer", "go", domain.WorkRemote, domain.JobFullTime),
		mkRecord("b", "Manager", "people", domain.WorkOnSite, domain.JobFullTime),
		mkRecord("c", "Engineer", "rust", domain.WorkHybrid, domain.JobContract),
		mkRecord("d", "Engineer", "go and rust", domain.WorkRemote, domain.JobFullTime),
	}

	got := Apply(records, Config{Requisites: terms(t, "engineer")})
	wantIDs := []string{"a", "c", "d"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Apply kept %d records, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("Apply()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

// Adding a blacklist term or a requisite can only shrink the result;
// widening an inclusion set can only grow it.
func TestFilterMonotonicity(t *testing.T) {
	records := []domain.JobRecord{
		mkRecord("a", "Engineer", "go remote", domain.WorkRemote, domain.JobFullTime),
		mkRecord("b", "Engineer", "java onsite", domain.WorkOnSite, domain.JobFullTime),
		mkRecord("c", "Analyst", "excel hybrid", domain.WorkHybrid, domain.JobPartTime),
		mkRecord("d", "Engineer", "go hybrid", domain.WorkHybrid, domain.JobContract),
	}

	base := Config{Requisites: terms(t, "engineer")}
	baseN := len(Apply(records, base))

	moreReq := base
	moreReq.Requisites = terms(t, "engineer", "go")
	if n := len(Apply(records, moreReq)); n > baseN {
		t.Errorf("adding a requisite grew the set: %d > %d", n, baseN)
	}

	withBL := base
	withBL.Blacklist = terms(t, "java")
	if n := len(Apply(records, withBL)); n > baseN {
		t.Errorf("adding a blacklist term grew the set: %d > %d", n, baseN)
	}

	narrow := Config{WorkModels: mapset.NewSet(domain.WorkRemote)}
	wide := Config{WorkModels: mapset.NewSet(domain.WorkRemote, domain.WorkHybrid)}
	if len(Apply(records, wide)) < len(Apply(records, narrow)) {
		t.Error("widening the work-model set shrank the filtered set")
	}
}
