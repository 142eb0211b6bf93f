package deploy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

const (
	// maxListedFiles — сколько файлов набора показывать в диагнозе.
	maxListedFiles = 5

	// genericTitle — заголовок, когда у ошибки нет пригодного описания.
	genericTitle = "Deployment failed for an unknown reason."
)

// Diagnosis — диагноз неудачного деплоя.
//
// Одно сообщение собирает: заголовок, детальный разбор ответа
// платформы, подсказки по исправлению и список файлов набора.
type Diagnosis struct {
	// Title — краткое описание: title платформы, фраза о сетевом
	// сбое или исходное сообщение ошибки.
	Title string

	// Detail — переформатированный detail ответа платформы.
	Detail string

	// Hints — подсказки по исправлению, подобранные по заголовку.
	Hints []string

	// Attempted — отображаемые пути файлов набора.
	Attempted []string

	// Err — исходная ошибка.
	Err error
}

// Error реализует интерфейс error.
func (d *Diagnosis) Error() string {
	var b strings.Builder
	b.WriteString(d.Title)

	if d.Detail != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Detail)
	}

	if len(d.Hints) > 0 {
		b.WriteString("\n\nHints:")
		for _, h := range d.Hints {
			b.WriteString("\n  - " + h)
		}
	}

	if len(d.Attempted) > 0 {
		b.WriteString("\n\nAttempted resources:")
		shown := d.Attempted
		if len(shown) > maxListedFiles {
			shown = shown[:maxListedFiles]
		}
		for _, p := range shown {
			b.WriteString("\n  - " + p)
		}
		if rest := len(d.Attempted) - maxListedFiles; rest > 0 {
			b.WriteString(fmt.Sprintf("\n  ... and %d more", rest))
		}
	}

	return b.String()
}

// Unwrap возвращает исходную ошибку.
func (d *Diagnosis) Unwrap() error {
	return d.Err
}

// Diagnose переводит ошибку деплоя в Diagnosis.
//
// Заголовок выбирается по убыванию приоритета:
//  1. title из problem details платформы
//  2. фраза о распознанном сетевом сбое
//  3. сообщение самой ошибки
//  4. genericTitle
func Diagnose(err error, files []*domain.ResourceFile) *Diagnosis {
	d := &Diagnosis{Err: err}
	for _, f := range files {
		d.Attempted = append(d.Attempted, f.RelativePath)
	}

	var apiErr *client.APIError
	hasAPI := errors.As(err, &apiErr)

	title := ""
	if hasAPI && apiErr.Title != "" {
		title = apiErr.Title
	}
	if title == "" {
		title = transportTitle(err)
	}
	if title == "" && err != nil {
		title = err.Error()
	}
	if title == "" {
		title = genericTitle
	}
	d.Title = title

	if hasAPI && apiErr.Detail != "" {
		d.Detail = formatDetail(apiErr.Detail, files)
	}

	d.Hints = hintsFor(d.Title)
	return d
}

// transportTitle возвращает фразу для распознанного сетевого сбоя
// или пустую строку.
func transportTitle(err error) string {
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return "The platform refused the connection."
	case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return "The platform host is unreachable."
	case errors.Is(err, syscall.ECONNRESET):
		return "The connection to the platform was reset."
	case errors.Is(err, syscall.ECONNABORTED):
		return "The connection to the platform was aborted."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request to the platform timed out."
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "The request to the platform timed out."
	}
	return ""
}

// hintsFor подбирает подсказки по заголовку диагноза.
func hintsFor(title string) []string {
	upper := strings.ToUpper(title)
	switch {
	case strings.Contains(upper, "INVALID"):
		return []string{
			"A resource may reference a message, form or called process that is not part of this deployment.",
			"Two resources may declare the same definition id.",
			"A resource may be malformed; open it in the modeler and check for validation errors.",
		}
	case strings.Contains(upper, "EXHAUSTED"), strings.Contains(upper, "UNAVAILABLE"):
		return []string{
			"The platform is under load; wait a moment and deploy again.",
		}
	case strings.Contains(upper, "UNAUTHENTICATED"), strings.Contains(upper, "UNAUTHORIZED"),
		strings.Contains(upper, "PERMISSION"), strings.Contains(upper, "FORBIDDEN"):
		return []string{
			"Check the token and tenant of the active profile (dirigent profile show).",
		}
	case strings.Contains(upper, "NOT_FOUND"), strings.Contains(upper, "NOT FOUND"),
		strings.Contains(upper, "REFUSED"), strings.Contains(upper, "UNREACHABLE"),
		strings.Contains(upper, "TIMED OUT"), strings.Contains(upper, "RESET"),
		strings.Contains(upper, "ABORTED"):
		return []string{
			"Check that the platform is running and the profile address is correct (dirigent profile show).",
		}
	default:
		return []string{
			"Inspect the platform response above, fix the resources and deploy again.",
		}
	}
}

// formatDetail переформатирует detail платформы в читаемый список.
//
// Строки, в которых упоминается файл набора, получают отступ и явный
// маркер серьёзности: [WARNING], если он был в строке, иначе [ERROR].
// Остальные строки проходят без изменений.
func formatDetail(detail string, files []*domain.ResourceFile) string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}

	lines := strings.Split(strings.TrimRight(detail, "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !mentionsAny(line, names) {
			out = append(out, line)
			continue
		}
		marker := "[ERROR]"
		if strings.Contains(line, "[WARNING]") {
			marker = "[WARNING]"
		}
		clean := strings.ReplaceAll(line, "[ERROR]", "")
		clean = strings.ReplaceAll(clean, "[WARNING]", "")
		out = append(out, "  "+marker+" "+strings.TrimSpace(clean))
	}
	return strings.Join(out, "\n")
}

func mentionsAny(line string, names []string) bool {
	for _, n := range names {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}
