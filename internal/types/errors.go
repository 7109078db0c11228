package types

import "errors"

// Error kinds. Adapters wrap the underlying cause with one of these so the
// CLI layer can tell what failed with errors.Is.
var (
	ErrConfigParse  = errors.New("config parse error")
	ErrTransport    = errors.New("transport error")
	ErrDecode       = errors.New("decode error")
	ErrFilesystem   = errors.New("filesystem error")
	ErrExternalTool = errors.New("external tool error")
)
