package util

// Version of the flow controller
var Version = "0.1.0"
