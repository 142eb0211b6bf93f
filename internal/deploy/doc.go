// Package deploy — конвейер деплоя: разрешение ресурсов, отправка
// на платформу и сверка результата.
//
// Включает:
//   - deployer.go  — Deployer: resolve → submit → reconcile
//   - reconcile.go — сопоставление ответа платформы с локальными файлами
//   - diagnose.go  — перевод ошибок платформы и сети в диагноз для пользователя
//
// Деплой всегда уходит одним запросом: либо платформа принимает весь
// набор, либо не принимает ничего.
package deploy
