package core

import glog "github.com/goliatone/go-logger/glog"

// Compile-time checks that the logger aliases stay aligned with glog.
var (
	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
