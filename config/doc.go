// Package config resolves the bot token and default chat id used by tgsend.
//
// Sources are consulted in order of precedence:
//
//  1. explicit values passed by the caller
//  2. environment values, captured once by FromEnv at the program boundary
//  3. a named section of an INI file, searched at the custom path,
//     ~/tgsend.conf and /etc/tgsend.conf
//
// A configuration file looks like:
//
//	[Default]
//	BotToken = 123456:ABC-DEF
//	ChatID = 987654
//
//	[Work]
//	BotToken = 654321:XYZ
//
// The library itself never reads the process environment.
package config
