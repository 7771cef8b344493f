package wordpredict

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	OptionPrefixes = []string{"--", "-"}
	OptionList     = []*Option{
		&Option{
			Name:        "P",
			HasArgument: true,
			Doc:         "specify a property file",
		},
		&Option{
			Name:        "t",
			HasArgument: true,
			Doc:         `specify the successor table file(can also set the "tablefile" property)`,
		},
		&Option{
			Name:        "o",
			HasArgument: true,
			Doc:         `specify the number of predictions(can also set the "operationcount" property)`,
		},
		&Option{
			Name:        "p",
			HasArgument: true,
			Doc:         "specify a property value",
		},
		&Option{
			Name:        "s",
			HasArgument: false,
			Doc:         "print status to stderr",
		},
		&Option{
			Name:        "h",
			HasArgument: false,
			Doc:         "show this help message and exit",
		},
		&Option{
			Name:        "help",
			HasArgument: false,
			Doc:         "show this help message and exit",
		},
	}
	Options = make(map[string]*Option)

	ProgramName = ""
)

type Option struct {
	Name            string
	HasArgument     bool
	HasDefaultValue bool
	DefaultValue    string
	Doc             string
}

type Arguments struct {
	Properties
}

func Usage() {
	usageFormat := `usage: %s [options]

Runs a successor prediction workload against a word distribution table and
reports latency and word frequency measurements.

Options:
  -P filename      : specify a property file
  -t filename      : specify the successor table file(can also set the "tablefile" property)
  -o count         : specify the number of predictions(can also set the "operationcount" property)
  -p name=value    : specify a property value
  -s               : print status to stderr

Table Files:
  One entry per line in the form word<TAB>successor<TAB>cumulative
  probability. The lines of one word must be contiguous and in list order,
  with strictly ascending cumulative probabilities ending at 1.0.

optional arguments:
  -h, --help         show this help message and exit`
	Println(usageFormat, ProgramName)
}

func init() {
	ProgramName = filepath.Base(os.Args[0])

	// init options
	for i := 0; i < len(OptionList); i++ {
		o := OptionList[i]
		Options[o.Name] = o
	}
}

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func ParseArgs() *Arguments {
	props := NewProperties()
	for i := 1; i < len(os.Args); i++ {
		a := os.Args[i]
		for _, p := range OptionPrefixes {
			if strings.HasPrefix(a, p) {
				a = strings.TrimPrefix(a, p)
				break
			}
		}
		option, ok := Options[a]
		if !ok {
			ExitOnError("unknown option: %s", os.Args[i])
		}
		if option.HasArgument {
			i++
			if !(i < len(os.Args)) {
				ExitOnError("missing argument for option: %s", option.Name)
			}
			arg := os.Args[i]
			switch option.Name {
			case "t":
				props.Add(PropertyTableFile, arg)
			case "o":
				props.Add(PropertyOperationCount, arg)
			case "p":
				// it's a property, should be in `k=v` form
				parts := strings.Split(arg, "=")
				if len(parts) != 2 {
					ExitOnError("invalid property: %s", arg)
				}
				props.Add(parts[0], parts[1])
			case "P":
				propsFromFile, err := LoadProperties(arg)
				if err != nil {
					ExitOnError(err.Error())
				}
				props.Merge(propsFromFile)
			}
		} else {
			switch option.Name {
			case "s":
				props.Add(PropertyStatus, "true")
			case "h", "help":
				Usage()
				os.Exit(0)
			}
		}
	}
	return &Arguments{
		Properties: props,
	}
}

func Main() {
	args := ParseArgs()
	var client Client = NewRunner(args)
	client.Main()
}
