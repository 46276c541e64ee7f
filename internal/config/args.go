package config

import "fmt"

// Args holds the command line flags and file paths in their raw parsed
// form, before they are layered into the run Options.
type Args struct {
	NumberAll       bool
	NumberNonblank  bool
	SqueezeBlank    bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonprinting bool
	Follow          bool
	ShowHelp        bool
	ShowVersion     bool
	Paths           []string
}

// ParseFlags tokenizes the command line. Short flags use a single dash and
// may be bundled ("-ns"). A bare "--" ends flag parsing, everything after
// it is a file path. Encountering a help or version flag stops parsing
// right away, matching the exit-before-validating behavior users expect
// from "ecat -h".
func ParseFlags(argv []string) (*Args, error) {
	args := &Args{}
	parsingFlags := true

	for _, arg := range argv {
		if parsingFlags && arg == "--" {
			parsingFlags = false
			continue
		}
		if !parsingFlags || len(arg) < 2 || arg[0] != '-' {
			args.Paths = append(args.Paths, arg)
			continue
		}
		if arg[1] == '-' {
			switch arg {
			case "--help":
				args.ShowHelp = true
				return args, nil
			case "--version":
				args.ShowVersion = true
				return args, nil
			default:
				return nil, fmt.Errorf("unknown option: %s", arg)
			}
		}
		for _, flag := range arg[1:] {
			switch flag {
			case 'n':
				args.NumberAll = true
			case 'b':
				args.NumberNonblank = true
			case 's':
				args.SqueezeBlank = true
			case 'e':
				args.ShowEnds = true
			case 'T':
				args.ShowTabs = true
			case 'v':
				args.ShowNonprinting = true
			case 'A':
				args.ShowNonprinting = true
				args.ShowTabs = true
				args.ShowEnds = true
			case 'f':
				args.Follow = true
			case 'h':
				args.ShowHelp = true
				return args, nil
			case 'V':
				args.ShowVersion = true
				return args, nil
			default:
				return nil, fmt.Errorf("unknown flag: -%c", flag)
			}
		}
	}
	return args, nil
}
