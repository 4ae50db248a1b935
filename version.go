package xstate

// Version is the module version, overridable at build time via
// -ldflags "-X github.com/zoyopo/xstate.Version=...".
var Version = "0.1.0"
