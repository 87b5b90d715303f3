package render

import "errors"

// ErrRenderFailed wraps failures writing the HTML payload.
var ErrRenderFailed = errors.New("render: failed to render email")
