// Package tgsend sends notifications, files and structured messages to
// Telegram chats through a bot.
//
// # Quick Start
//
//	client, err := tgsend.New(tgsend.Options{Env: config.FromEnv()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.SendMessage(ctx, "backup finished", sender.MessageOptions{
//	    Decoration: sender.Decoration{Title: "db01", Level: tg.LevelSuccess},
//	})
//
// # Credentials
//
// New takes the bot token and default chat id from, in order: Options,
// Options.Env, then the "Default" section of the first configuration file
// found among Options.Path, ~/tgsend.conf and /etc/tgsend.conf.
// Load reads one named section and nothing else:
//
//	client, err := tgsend.Load("Work", "")
//
// # Packages
//
//	tgsend/sender   the client and its send methods
//	tgsend/config   credential resolution
//	tgsend/tg       parse modes, levels and errors
package tgsend
