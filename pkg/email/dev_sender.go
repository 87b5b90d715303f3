package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/myrcvr/onboardmail/pkg/sanitizer"
)

// DevSender writes messages to a directory instead of sending them.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// SendEmail writes <timestamp>_<tag or subject>.{html,txt,json} into the
// directory, creating it when missing.
func (d *DevSender) SendEmail(_ context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	name := params.Tag
	if name == "" {
		name = params.Subject
	}
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405")+"_"+sanitizer.Filename(name))

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	files := map[string][]byte{".json": meta}
	if params.BodyHTML != "" {
		files[".html"] = []byte(params.BodyHTML)
	}
	if params.BodyText != "" {
		files[".txt"] = []byte(params.BodyText)
	}
	for ext, data := range files {
		if err := os.WriteFile(base+ext, data, 0o644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrFailedToSendEmail, ext, err)
		}
	}
	return nil
}
