// Package cli implements the hwfacts command-line interface.
//
// # Commands
//
// snapshot - Collect every hardware category once:
//
//	hwfacts snapshot [--format text|json|yaml|table] [--output FILE]
//
// Categories that cannot be collected are reported with their error; the
// command still exits 0. The default format is the text report.
//
// usage - Sample CPU and RAM utilization (blocks for about one second):
//
//	hwfacts usage [--format text|json|yaml|table]
//
// panel - Scrollable full-screen report; r re-collects, q quits:
//
//	hwfacts panel
//
// serve - HTTP server for snapshots and usage:
//
//	hwfacts serve [--port 8080]
//
// version - Print build information.
//
// # Environment Variables
//
//	HWFACTS_LOG_LEVEL        log level (debug, info, warn, error); LOG_LEVEL also works
//	HWFACTS_FORMAT           default output format
//	HWFACTS_OUTPUT           default output path
//	HWFACTS_COMMAND_TIMEOUT  timeout for nvidia-smi, lspci and similar queries
//	HWFACTS_PORT             serve port; PORT is used when unset
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, output failure)
//	2  Context canceled or timeout
package cli
