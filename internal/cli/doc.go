// Package cli resolves how a shell is launched: which binary, with which
// arguments and environment.
//
// # Shell Discovery
//
// The Discoverer interface locates the shell binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    Shell:     "bash",
//	    ShellPath: "",           // Optional explicit path
//	    Logger:    slog.Default(),
//	})
//	shellPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.ShellPath (if provided)
//  2. System PATH
//  3. Common installation directories (/bin, /usr/bin, /usr/local/bin)
//
// # Command Building
//
//	name, args, err := cli.BuildArgs(options)
//	env := cli.BuildEnvironment(options)
package cli
