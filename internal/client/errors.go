package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError — ошибка REST API платформы.
//
// Платформа отвечает на ошибки документом problem details
// (application/problem+json): type, title, status, detail. Если тело
// не распарсилось, Title пустой и остаётся только HTTP-статус.
type APIError struct {
	// Status — HTTP-статус ответа.
	Status int

	// Title — краткая классификация ошибки из тела ответа.
	Title string

	// Detail — развёрнутое описание, часто многострочное.
	Detail string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Title, e.Status)
	}
	return fmt.Sprintf("platform returned HTTP %d", e.Status)
}

// problemDetails — тело ошибки RFC 7807.
type problemDetails struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// checkError превращает ответ со статусом >= 400 в *APIError.
func checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var pd problemDetails
	if err := json.Unmarshal(body, &pd); err == nil {
		return &APIError{Status: resp.StatusCode, Title: pd.Title, Detail: pd.Detail}
	}
	return &APIError{Status: resp.StatusCode, Detail: string(body)}
}
