package autostart

import (
	"bytes"
	"encoding/xml"
	"path/filepath"
	"text/template"

	"github.com/dixieflatline76/wallhavener/config"
	"github.com/spf13/afero"
)

var plistTmpl = template.Must(template.New("plist").Funcs(template.FuncMap{"xml": xmlEscape}).Parse(
	`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>{{xml .Label}}</string>
    <key>ProgramArguments</key>
    <array>
        <string>{{xml .Exe}}</string>
    </array>
    <key>WorkingDirectory</key>
    <string>{{xml .Dir}}</string>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`))

// NewLaunchAgent registers exe as a per-user LaunchAgent under <home>/Library/LaunchAgents.
func NewLaunchAgent(fs afero.Fs, home, exe string) *FileEntry {
	path := filepath.Join(home, "Library", "LaunchAgents", config.AppID+".plist")
	return NewFileEntry(fs, path, LaunchAgentPlist(exe))
}

// LaunchAgentPlist renders the property list that starts exe at login.
func LaunchAgentPlist(exe string) []byte {
	var buf bytes.Buffer
	_ = plistTmpl.Execute(&buf, struct{ Label, Exe, Dir string }{config.AppID, exe, filepath.Dir(exe)})
	return buf.Bytes()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
