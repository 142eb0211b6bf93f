package deploy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/domain"
	"github.com/dirigent-hq/dirigent-cli/internal/resolver"
)

// stubAPI подменяет клиент платформы.
type stubAPI struct {
	resp      *client.DeploymentResponse
	err       error
	calls     int
	gotTenant string
	gotRes    []client.DeploymentResource
}

func (s *stubAPI) CreateDeployment(_ context.Context, tenantID string, resources []client.DeploymentResource) (*client.DeploymentResponse, error) {
	s.calls++
	s.gotTenant = tenantID
	s.gotRes = resources
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func bpmn(id string) string {
	return `<bpmn:definitions><bpmn:process id="` + id + `" isExecutable="true"/></bpmn:definitions>`
}

func dmn(id string) string {
	return `<definitions><decision id="` + id + `" name="` + id + `"/></definitions>`
}

func TestDeployerRun_Success(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "_bb-shared", "y.dmn"), dmn("d1"))
	writeFile(t, filepath.Join(base, "x.bpmn"), bpmn("p1"))
	writeFile(t, filepath.Join(base, "review.form"), `{"id": "review"}`)

	stub := &stubAPI{resp: &client.DeploymentResponse{
		Key:       "7001",
		Processes: []client.ProcessDefinitionEntry{{ID: "p1", Version: 3, Key: "2001"}},
		Decisions: []client.DecisionDefinitionEntry{{ID: "d1", Version: 1, Key: "2002"}},
		Forms:     []client.FormDefinitionEntry{{FormID: "review", Version: 2, Key: "2003"}},
	}}

	d := NewDeployer(stub, nil)
	report, err := d.Run(context.Background(), Params{
		BaseDir:  base,
		Paths:    []string{base},
		TenantID: "acme",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if stub.gotTenant != "acme" {
		t.Errorf("expected tenant acme, got %q", stub.gotTenant)
	}

	var gotNames, gotTypes []string
	for _, r := range stub.gotRes {
		gotNames = append(gotNames, r.Name)
		gotTypes = append(gotTypes, r.ContentType)
	}
	// building block раньше несгруппированных, внутри — по пути
	if want := []string{"y.dmn", "review.form", "x.bpmn"}; !reflect.DeepEqual(gotNames, want) {
		t.Errorf("expected parts %v, got %v", want, gotNames)
	}
	if want := []string{"application/xml", "application/json", "application/xml"}; !reflect.DeepEqual(gotTypes, want) {
		t.Errorf("expected content types %v, got %v", want, gotTypes)
	}

	if report.DeploymentKey != "7001" {
		t.Errorf("expected deployment key 7001, got %q", report.DeploymentKey)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Rows))
	}

	first := report.Rows[0]
	if first.Kind != domain.KindDecision || first.Badge != "BB" {
		t.Errorf("expected building block decision first, got %+v", first)
	}
	if want := filepath.Join("_bb-shared", "y.dmn"); first.File != want {
		t.Errorf("expected file %q, got %q", want, first.File)
	}
}

func TestDeployerRun_DuplicateAbortsBeforeNetwork(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.bpmn"), bpmn("p1"))
	writeFile(t, filepath.Join(base, "b.bpmn"), bpmn("p1"))

	stub := &stubAPI{}
	d := NewDeployer(stub, nil)

	_, err := d.Run(context.Background(), Params{BaseDir: base, Paths: []string{base}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dupErr *resolver.DuplicateError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateError, got %T", err)
	}
	if stub.calls != 0 {
		t.Errorf("expected no platform calls, got %d", stub.calls)
	}
}

func TestDeployerRun_ResolutionErrors(t *testing.T) {
	stub := &stubAPI{}
	d := NewDeployer(stub, nil)

	base := t.TempDir()
	if _, err := d.Run(context.Background(), Params{BaseDir: base, Paths: []string{base}}); !errors.Is(err, resolver.ErrNoResources) {
		t.Errorf("expected ErrNoResources, got %v", err)
	}
	if _, err := d.Run(context.Background(), Params{BaseDir: base}); !errors.Is(err, resolver.ErrNoPaths) {
		t.Errorf("expected ErrNoPaths, got %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("expected no platform calls, got %d", stub.calls)
	}
}

func TestSubmit_EmptySet(t *testing.T) {
	d := NewDeployer(&stubAPI{}, nil)
	if _, err := d.Submit(context.Background(), "", nil); !errors.Is(err, resolver.ErrNoResources) {
		t.Errorf("expected ErrNoResources, got %v", err)
	}
}

func TestDeployerRun_PlatformErrorDiagnosed(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "x.bpmn"), bpmn("p1"))

	apiErr := &client.APIError{Status: 400, Title: "INVALID_ARGUMENT", Detail: "'x.bpmn': no start event [ERROR]"}
	stub := &stubAPI{err: apiErr}
	d := NewDeployer(stub, nil)

	_, err := d.Run(context.Background(), Params{BaseDir: base, Paths: []string{base}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var diag *Diagnosis
	if !errors.As(err, &diag) {
		t.Fatalf("expected Diagnosis, got %T", err)
	}
	if diag.Title != "INVALID_ARGUMENT" {
		t.Errorf("expected title INVALID_ARGUMENT, got %q", diag.Title)
	}
	if len(diag.Attempted) != 1 || diag.Attempted[0] != "x.bpmn" {
		t.Errorf("expected attempted [x.bpmn], got %v", diag.Attempted)
	}

	// Исходная ошибка доступна через Unwrap.
	var unwrapped *client.APIError
	if !errors.As(err, &unwrapped) || unwrapped.Status != 400 {
		t.Errorf("expected wrapped APIError, got %v", err)
	}
}
