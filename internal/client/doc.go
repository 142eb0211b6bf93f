// Package client — HTTP-клиент REST API платформы Dirigent.
//
// Включает:
//   - client.go — транспорт: деплой (multipart) и экземпляры процессов (JSON)
//   - dto.go    — типы запросов и ответов API
//   - errors.go — разбор ошибок формата problem details (RFC 7807)
//
// Клиент не повторяет запросы: деплой не идемпотентен, решение о
// повторе остаётся за вызывающим.
package client
