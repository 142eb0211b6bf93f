package resolver

import (
	"testing"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

func TestDefinitionID_Process(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "namespace prefix",
			content: `<bpmn:process id="order-process" isExecutable="true">`,
			want:    "order-process",
		},
		{
			name:    "no prefix",
			content: `<process name="x" id="plain">`,
			want:    "plain",
		},
		{
			name:    "id not first attribute",
			content: `<bpmn2:process name="n" isExecutable="true" id="second">`,
			want:    "second",
		},
		{
			name:    "attributes across lines",
			content: "<bpmn:process\n    id=\"wrapped\"\n    isExecutable=\"true\">",
			want:    "wrapped",
		},
		{
			name:    "first match wins",
			content: `<bpmn:process id="one"/><bpmn:process id="two"/>`,
			want:    "one",
		},
		{
			name:    "no process element",
			content: `<bpmn:task id="t1"/>`,
			want:    "",
		},
		{
			name:    "id on nested element only",
			content: "<bpmn:process>\n  <bpmn:task id=\"t1\"/>\n</bpmn:process>",
			want:    "",
		},
		{
			name:    "processRef attribute not confused",
			content: `<bpmn:participant id="P1" processRef="proc"/>`,
			want:    "",
		},
		{
			name:    "empty id",
			content: `<process id="">`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.ResourceFile{
				Name:    "x.bpmn",
				Kind:    domain.KindProcess,
				Content: []byte(tt.content),
			}
			if got := DefinitionID(f); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDefinitionID_Decision(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no prefix",
			content: `<decision id="approve-order" name="Approve order">`,
			want:    "approve-order",
		},
		{
			name:    "namespace prefix",
			content: `<dmn:decision id="risk" name="Risk">`,
			want:    "risk",
		},
		{
			name:    "first of several decisions",
			content: `<decision id="first"/><decision id="later"/>`,
			want:    "first",
		},
		{
			name:    "no decision element",
			content: `<definitions name="empty"/>`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.ResourceFile{
				Name:    "x.dmn",
				Kind:    domain.KindDecision,
				Content: []byte(tt.content),
			}
			if got := DefinitionID(f); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDefinitionID_Form(t *testing.T) {
	f := &domain.ResourceFile{
		Name:    "review-order.form",
		Kind:    domain.KindForm,
		Content: []byte(`{"components": []}`),
	}
	if got := DefinitionID(f); got != "review-order" {
		t.Errorf("expected review-order, got %q", got)
	}
}
