// Package cli provides the interactive WedMac admin console.
//
// It wires configuration, the local session store, the admin API client, and
// an interactive loop that gates every admin command on an authenticated
// session. Typical flow: restore a persisted session, or log in with a phone
// number and OTP, then manage support tickets, browse activity logs, and run
// bulk lead imports.
//
// Key features:
//   - Phone/OTP login with a resend cooldown, plus a legacy password login
//   - Support tickets: list, respond, delete
//   - Paginated artist activity logs
//   - Bulk lead import: parse a spreadsheet, preview, submit, export a report
//
// The loop is started via App.Root(ctx), which blocks until the user exits.
package cli
