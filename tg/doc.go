// Package tg holds the vocabulary shared by the tgsend packages.
//
// This package contains:
//   - ParseMode and the bold/italic/fixed markup table
//   - Level and the severity icon table
//   - SecretToken for safe token handling
//   - Sentinel errors, APIError, ConfigError and ValidationError
//
// # Usage
//
//	mode := tg.ParseModeHTML
//	mode.Bold("Backup")      // <b>Backup</b>
//	tg.LevelWarn.Icon()      // ⚠
//	token := tg.SecretToken("123:ABC...")
package tg
