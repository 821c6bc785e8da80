package cli

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println(`moodkeeper - mood journal with offline-first sync

Usage:
  moodkeeper <command> [flags]

Commands:
  register              create a new account
  login                 authenticate and store the session locally
  logout                delete the local session
  status                show session, mode and sync state
  add                   record a mood entry
                        flags: -mood 1..5 (required), -note, -tags a,b, -at RFC3339
  list                  show the current journal page
  delete <entry-id>     delete an entry
  mode show             print the current mode
  mode set <A|B>        set a manual mode override
  mode auto             clear the override, return to automatic mode
  watch                 keep the journal view live until Ctrl+C
  help                  print this message`)
}
