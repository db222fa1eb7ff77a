package presentation

import (
	"fmt"
	"html"
	"strings"

	"fileid-inspector/internal/pkg/model"
)

func GenericErrorMsg() string {
	return "<b>❌ Something went wrong, please try again later</b>"
}

func HelpMsg() string {
	var sb strings.Builder
	sb.WriteString("<b>🔎 Send or forward any photo, file, sticker, video or voice message and I will decode its file_id</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString("<b>⚙️ Available commands:</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString("<b>/decode &lt;file_id&gt;</b> - decode a file_id")
	sb.WriteString(breakLine(1))
	sb.WriteString("<b>/unique &lt;file_unique_id&gt;</b> - decode a file_unique_id")
	sb.WriteString(breakLine(1))
	sb.WriteString("<b>/recent</b> - recently inspected files")
	return sb.String()
}

func UsageMsg(command, argument string) string {
	return fmt.Sprintf("<b>❓ Usage: /%s &lt;%s&gt;</b>", command, argument)
}

func DecodeErrorMsg(err error) string {
	return fmt.Sprintf("<b>❌ Failed to decode:</b> %s", html.EscapeString(err.Error()))
}

func FileReportMsg(report []byte) string {
	return reportMsg("📄 file_id", report)
}

func UniqueReportMsg(report []byte) string {
	return reportMsg("🔑 file_unique_id", report)
}

func reportMsg(title string, report []byte) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b>", title))
	sb.WriteString(breakLine(2))
	sb.WriteString("<pre>")
	sb.WriteString(html.EscapeString(strings.TrimRight(string(report), "\n")))
	sb.WriteString("</pre>")
	return sb.String()
}

// MediaReportMsg summarizes a batch of registered attachments. failed maps a
// file name to the reason it could not be decoded.
func MediaReportMsg(records []model.Record, failed map[string]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>🔎 Inspected %d files</b>", len(records)))
	for _, record := range records {
		sb.WriteString(breakLine(2))
		sb.WriteString(recordLine(record))
	}
	if len(failed) > 0 {
		sb.WriteString(breakLine(2))
		sb.WriteString(fmt.Sprintf("<b>❌ Failed to decode %d files</b>", len(failed)))
		for name, reason := range failed {
			sb.WriteString(breakLine(1))
			sb.WriteString(fmt.Sprintf("%s - %s", html.EscapeString(name), html.EscapeString(reason)))
		}
	}
	return sb.String()
}

func RecentMsg(records []model.Record) string {
	var sb strings.Builder
	sb.WriteString("<b>🕑 Recently inspected files</b>")
	for _, record := range records {
		sb.WriteString(breakLine(2))
		sb.WriteString(recordLine(record))
		sb.WriteString(breakLine(1))
		sb.WriteString(fmt.Sprintf("<i>seen %s</i>", record.SeenAt.UTC().Format("2006-01-02 15:04:05")))
	}
	return sb.String()
}

func EmptyRecentMsg() string {
	return "<b>🔍 No files have been inspected yet</b>"
}

func recordLine(record model.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b> %s, dc %d", html.EscapeString(record.Kind), html.EscapeString(record.Type), record.DCID))
	if record.HasFileReference {
		sb.WriteString(", has file reference")
	}
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("<code>%s</code>", html.EscapeString(record.FileUniqueID)))
	return sb.String()
}

func StartingDownloadMsg(total int) string {
	return fmt.Sprintf("<b>💾 Archiving files. Total: %d</b>", total)
}

func DownloadProgressMsg(fileName string, progress int, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>💾 Archived %d of %d files</b>", progress, total))
	sb.WriteString(breakLine(2))
	sb.WriteString(fmt.Sprintf("Last file: <code>%s</code>", html.EscapeString(fileName)))
	return sb.String()
}

func DownloadResultMsg(folder string, errors map[string]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>✔️ Archive finished:</b> <code>%s</code>", html.EscapeString(folder)))
	if len(errors) > 0 {
		sb.WriteString(breakLine(2))
		sb.WriteString(fmt.Sprintf("<b>❌ Failed to archive %d files</b>", len(errors)))
		for filename, err := range errors {
			sb.WriteString(breakLine(1))
			sb.WriteString(fmt.Sprintf("%s - %s", html.EscapeString(filename), html.EscapeString(err)))
		}
	}
	return sb.String()
}

func breakLine(n int) string {
	return strings.Repeat("\n", n)
}
