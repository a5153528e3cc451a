// Package sender delivers messages and media to Telegram chats through the
// Bot API.
//
// Each send method validates the destination, assembles the text or caption
// (icon, bold title, body) and performs exactly one HTTP call: a GET for
// parameter-only methods, a streamed multipart POST for uploads. The raw
// *Response is returned; inspect Response.Failed for API-level failures.
//
// # Features
//
//   - Text, photo, document, audio, video, animation, voice, sticker,
//     location, venue, contact and poll messages
//   - Optional rate limiting and circuit breaker
//   - Files opened from disk are closed when the call returns
//   - Token auto-redaction in logs and errors
//
// # Usage
//
//	client, err := sender.New(token, sender.WithChatID("123456"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.SendMessage(ctx, "Disk usage at 91%", sender.MessageOptions{
//	    Decoration: sender.Decoration{Title: "backup01", Level: tg.LevelWarn},
//	})
//	if err == nil && resp.Failed() {
//	    fmt.Println(resp.StatusCode, resp)
//	}
package sender
