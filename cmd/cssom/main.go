package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/djherbis/atime"
	humanize "github.com/dustin/go-humanize"
	"github.com/matryer/try"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/cssom"
	"github.com/tdewolff/cssom/stylesheet"
)

// Version is the current cssom version.
var Version = "built from source"

var (
	hidden             bool
	matches            []string
	matchesRegexp      []*regexp.Regexp
	filters            []string
	filtersRegexp      []*regexp.Regexp
	recursive          bool
	quiet              bool
	verbose            int
	version            bool
	watch              bool
	syncFiles          bool
	bundle             bool
	strict             bool
	preserve           []string
	preserveMode       bool
	preserveOwnership  bool
	preserveTimestamps bool
	preserveLinks      bool
	options            stylesheet.Options
)

// Patterns scans filename patterns up to the next option.
type Patterns struct {
	patterns *[]string
	prefix   string
}

func (scanner Patterns) Scan(s []string) (int, error) {
	n := 0
	for _, item := range s {
		if strings.HasPrefix(item, "-") {
			break
		}
		*scanner.patterns = append(*scanner.patterns, scanner.prefix+item)
		n++
	}
	return n, nil
}

func (typenamer Patterns) TypeName() string {
	return "[]string"
}

// Task is a rewrite task.
type Task struct {
	root string
	srcs []string
	dst  string
	sync bool
}

// NewTask returns a new Task.
func NewTask(root, input, output string, sync bool) (Task, error) {
	if len(output) != 0 && (output == "." || output[len(output)-1] == os.PathSeparator) {
		rel, err := filepath.Rel(root, input)
		if err != nil {
			return Task{}, err
		}
		output = filepath.Join(output, rel)
	}
	return Task{root, []string{input}, output, sync}, nil
}

// Loggers.
var (
	Error   = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info    = log.New(io.Discard, "", 0)
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var inputs []string
	var output string
	var mode string
	var expand bool

	defaultPreserve := []string{"mode", "timestamps"}
	if supportsGetOwnership {
		defaultPreserve = []string{"mode", "ownership", "timestamps"}
	}

	f := argp.New("cssom")
	f.AddRest(&inputs, "inputs", "Input files or directories, leave blank to use stdin")
	f.AddOpt(&output, "o", "output", nil, "Output file or directory, leave blank to use stdout")
	f.AddOpt(&mode, "m", "mode", "minified", "Output mode (verbose, minified, optimized, expanded)")
	f.AddOpt(&expand, "e", "expand", false, "Write longhand properties only, same as --mode expanded")
	f.AddOpt(&options.Inline, "", "inline", false, "Inputs are declaration lists such as style attributes")
	f.AddOpt(&options.KeepComments, "", "keep-comments", false, "Preserve all comments")
	f.AddOpt(&strict, "", "strict", false, "Fail on invalid declarations instead of dropping them")
	f.AddOpt(Patterns{&matches, ""}, "", "match", nil, "Filename matching pattern, only matching filenames are processed")
	f.AddOpt(Patterns{&filters, "+"}, "", "include", nil, "Path inclusion pattern, includes paths previously excluded")
	f.AddOpt(Patterns{&filters, "-"}, "", "exclude", nil, "Path exclusion pattern, excludes paths from being processed")
	f.AddOpt(&recursive, "r", "recursive", false, "Recursively rewrite directories")
	f.AddOpt(&hidden, "a", "all", false, "Rewrite all files, including hidden files and files in hidden directories")
	f.AddOpt(&quiet, "q", "quiet", false, "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", nil, "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", false, "Watch files and rewrite upon changes")
	f.AddOpt(&syncFiles, "s", "sync", false, "Copy all files to destination directory and rewrite stylesheets")
	f.AddOpt(&preserve, "p", "preserve", defaultPreserve, "Preserve options (mode, ownership, timestamps, links, all)")
	f.AddOpt(&bundle, "b", "bundle", false, "Bundle files by concatenation into a single file")
	f.AddOpt(&version, "", "version", false, "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("cssom %s\n", Version)
		}
		return 0
	}

	if !quiet {
		Error = log.New(os.Stderr, "ERROR: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	var ok bool
	if options.Mode, ok = cssom.ParseMode(mode); !ok {
		Error.Println("unknown mode", mode)
		return 1
	} else if expand {
		if f.IsSet("mode") && options.Mode != cssom.Expanded {
			Error.Println("--expand cannot be used together with --mode", mode)
			return 1
		}
		options.Mode = cssom.Expanded
	}
	Info.Println("use mode", options.Mode)

	if len(inputs) == 1 && inputs[0] == "-" {
		inputs = inputs[:0] // stdin
	} else if output == "-" {
		output = "" // stdout
	}
	useStdin := len(inputs) == 0

	// compile matches and regexps
	var err error
	if 0 < len(matches) {
		matchesRegexp = make([]*regexp.Regexp, len(matches))
		for i, pattern := range matches {
			if matchesRegexp[i], err = compilePattern(pattern); err != nil {
				Error.Println(err)
				return 1
			}
		}
	}
	if 0 < len(filters) {
		filtersRegexp = make([]*regexp.Regexp, len(filters))
		for i, pattern := range filters {
			if filtersRegexp[i], err = compilePattern(pattern[1:]); err != nil {
				Error.Println(err)
				return 1
			}
		}
	}

	if (useStdin || output == "") && (watch || syncFiles) {
		if watch {
			Error.Println("--watch doesn't work with stdin and stdout, specify input and output")
		}
		if syncFiles {
			Error.Println("--sync doesn't work with stdin and stdout, specify input and output")
		}
		return 1
	} else if useStdin && (bundle || recursive) {
		if bundle {
			Error.Println("--bundle doesn't work with stdin, specify input")
		}
		if recursive {
			Error.Println("--recursive doesn't work with stdin, specify input")
		}
		return 1
	} else if output == "" && recursive && !bundle {
		Error.Println("--recursive doesn't work with stdout, specify output or use --bundle")
		return 1
	}
	if f.IsSet("preserve") {
		if bundle {
			Error.Println("--preserve cannot be used together with --bundle")
			return 1
		} else if useStdin || output == "" {
			Error.Println("--preserve cannot be used together with stdin or stdout")
			return 1
		}
	}
	for _, option := range preserve {
		switch option {
		case "all":
			preserveMode = true
			preserveOwnership = true
			preserveTimestamps = true
			preserveLinks = true
		case "mode":
			preserveMode = true
		case "ownership":
			preserveOwnership = true
		case "timestamps":
			preserveTimestamps = true
		case "links":
			preserveLinks = true
		default:
			Error.Println("unknown preserve option", option)
			return 1
		}
	}
	if preserveOwnership && !supportsGetOwnership {
		Warning.Println("preserve ownership not supported on platform")
	}

	for i, input := range inputs {
		if input == "-" {
			Error.Println("cannot mix files and stdin as input")
			return 1
		}
		inputs[i] = filepath.Clean(input)
		if input[len(input)-1] == os.PathSeparator {
			inputs[i] += string(os.PathSeparator)
		}
	}

	// set output file or directory, empty means stdout
	dirDst := false
	if output != "" {
		dirDst = IsDir(output)
		if !dirDst {
			if 1 < len(inputs) && !bundle {
				Error.Printf("stat %v: no such file or directory\n", output)
				return 1
			} else if len(inputs) == 1 {
				if info, err := os.Lstat(inputs[0]); err == nil && !bundle && info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0 {
					dirDst = true
				}
			}
		}
		if dirDst && bundle {
			Error.Println("--bundle requires destination to be stdout or a file")
			return 1
		}

		output = filepath.Clean(output)
		if dirDst {
			output += string(os.PathSeparator)
		}
	} else if 1 < len(inputs) && !bundle {
		Error.Println("must specify --bundle for multiple input files with stdout destination")
		return 1
	}

	var tasks []Task
	var roots []string
	if useStdin {
		Info.Println("rewrite from stdin")
		task, err := NewTask("", "", output, false)
		if err != nil {
			Error.Println(err)
			return 1
		}
		tasks = append(tasks, task)
		roots = append(roots, "")
	} else {
		tasks, roots, err = createTasks(osFS{}, inputs, output)
		if err != nil {
			Error.Println(err)
			return 1
		}
	}

	// concatenate
	if 1 < len(tasks) && bundle {
		for _, task := range tasks[1:] {
			tasks[0].srcs = append(tasks[0].srcs, task.srcs[0])
		}
		tasks = tasks[:1]
	}

	if dirDst {
		if err := os.MkdirAll(output, 0777); err != nil {
			Error.Println(err)
			return 1
		}
	}

	fails := 0
	start := time.Now()
	if !watch && (len(tasks) == 1 || 0 < verbose) {
		for _, task := range tasks {
			if ok := rewrite(task); !ok {
				fails++
			}
		}
	} else {
		numWorkers := runtime.NumCPU()
		if 0 < verbose {
			numWorkers = 1
		} else if numWorkers < 4 {
			numWorkers = 4
		}

		chanTasks := make(chan Task, 20)
		chanFails := make(chan int, numWorkers)
		for n := 0; n < numWorkers; n++ {
			go rewriteWorker(chanTasks, chanFails)
		}

		if !watch {
			for _, task := range tasks {
				chanTasks <- task
			}
		} else {
			watcher, err := NewWatcher(recursive)
			if err != nil {
				Error.Println(err)
				return 1
			}
			defer watcher.Close()
			changes := watcher.Run()

			for _, filename := range inputs {
				if err := watcher.AddPath(filename); err != nil {
					Error.Println(err)
					return 1
				}
			}

			for _, task := range tasks {
				watcher.IgnoreNext(task.dst)
				chanTasks <- task
			}

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			for changes != nil {
				select {
				case <-c:
					watcher.Close()
				case file, ok := <-changes:
					if !ok {
						changes = nil
						break
					}
					file = filepath.Clean(file)

					// find longest common path among roots
					root := ""
					for _, path := range roots {
						pathRel, err1 := filepath.Rel(path, file)
						rootRel, err2 := filepath.Rel(root, file)
						if err2 != nil || err1 == nil && len(pathRel) < len(rootRel) {
							root = path
						}
					}

					task, err := NewTask(root, file, output, !fileMatches(file))
					if err != nil {
						Error.Println(err)
						return 1
					}
					watcher.IgnoreNext(task.dst)
					chanTasks <- task
				}
			}
		}

		close(chanTasks)
		for n := 0; n < numWorkers; n++ {
			fails += <-chanFails
		}
	}

	if !watch {
		Info.Println("finished in", time.Since(start))
	}
	if 0 < fails {
		return 1
	}
	return 0
}

func rewriteWorker(chanTasks <-chan Task, chanFails chan<- int) {
	fails := 0
	for task := range chanTasks {
		if ok := rewrite(task); !ok {
			fails++
		}
	}
	chanFails <- fails
}

// compilePattern compiles a glob pattern, or a regular expression when prefixed by ~.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if len(pattern) == 0 || pattern[0] != '~' {
		if strings.HasPrefix(pattern, `\~`) {
			pattern = pattern[1:]
		}
		pattern = regexp.QuoteMeta(pattern)
		pattern = strings.ReplaceAll(pattern, `\*\*`, `.*`)
		pattern = strings.ReplaceAll(pattern, `\*`, fmt.Sprintf(`[^%c]*`, filepath.Separator))
		pattern = strings.ReplaceAll(pattern, `\?`, fmt.Sprintf(`[^%c]?`, filepath.Separator))
		pattern = "^" + pattern + "$"
	} else {
		pattern = pattern[1:]
	}
	return regexp.Compile(pattern)
}

func fileFilter(filename string) bool {
	if 0 < len(matches) {
		match := false
		base := filepath.Base(filename)
		for _, re := range matchesRegexp {
			if re.MatchString(base) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	match := true
	for i, re := range filtersRegexp {
		if re.MatchString(filename) {
			match = filters[i][0] == '+'
		}
	}
	return match
}

// fileMatches returns true for stylesheets that pass the filters.
func fileMatches(filename string) bool {
	return fileFilter(filename) && strings.EqualFold(filepath.Ext(filename), ".css")
}

func createTasks(fsys fs.FS, inputs []string, output string) ([]Task, []string, error) {
	tasks := []Task{}
	roots := []string{}
	for _, input := range inputs {
		root := filepath.Clean(filepath.Dir(input))
		input = filepath.Clean(input)

		var err error
		var info os.FileInfo
		if !preserveLinks {
			// follow and dereference symlinks
			info, err = fs.Stat(fsys, input)
		} else {
			info, err = os.Lstat(input)
		}
		if err != nil {
			return nil, nil, err
		}

		if preserveLinks && info.Mode()&os.ModeSymlink != 0 {
			if !syncFiles {
				Warning.Println("--sync not specified, omitting symbolic link", input)
				continue
			}
			task, err := NewTask(root, input, output, true)
			if err != nil {
				return nil, nil, err
			}
			tasks = append(tasks, task)
		} else if info.Mode().IsRegular() {
			// explicit inputs are rewritten regardless of their extension
			valid := fileFilter(input)
			if valid || syncFiles {
				task, err := NewTask(root, input, output, !valid)
				if err != nil {
					return nil, nil, err
				}
				tasks = append(tasks, task)
			}
		} else if info.Mode().IsDir() {
			if !recursive {
				Warning.Println("--recursive not specified, omitting directory", input)
				continue
			}

			var walkFn func(string, fs.DirEntry, error) error
			walkFn = func(input string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				} else if d.Name() == "." || d.Name() == ".." {
					return nil
				} else if d.Name() == "" || !hidden && d.Name()[0] == '.' {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}

				if !preserveLinks && d.Type()&os.ModeSymlink != 0 {
					info, err := fs.Stat(fsys, input)
					if err != nil {
						return err
					}
					if info.IsDir() {
						return fs.WalkDir(fsys, input, walkFn)
					}
					d = fs.FileInfoToDirEntry(info)
				}

				if preserveLinks && d.Type()&os.ModeSymlink != 0 {
					if !syncFiles {
						Warning.Println("--sync not specified, omitting symbolic link", input)
						return nil
					}
					task, err := NewTask(root, input, output, true)
					if err != nil {
						return err
					}
					tasks = append(tasks, task)
				} else if d.Type().IsRegular() {
					valid := fileMatches(input)
					if valid || syncFiles {
						task, err := NewTask(root, input, output, !valid)
						if err != nil {
							return err
						}
						tasks = append(tasks, task)
					}
				}
				return nil
			}
			if err := fs.WalkDir(fsys, input, walkFn); err != nil {
				return nil, nil, err
			}
			roots = append(roots, root)
		} else {
			return nil, nil, fmt.Errorf("not a file or directory %s", input)
		}
	}
	return tasks, roots, nil
}

func rewrite(t Task) bool {
	// synchronizing files that are copied to the same directory, no action needed
	if t.sync {
		if t.srcs[0] == t.dst {
			return true
		} else if info, err := os.Lstat(t.srcs[0]); preserveLinks && err == nil && info.Mode()&os.ModeSymlink != 0 {
			src, err := os.Readlink(t.srcs[0])
			if err != nil {
				Error.Println(err)
				return false
			}
			if err := createSymlink(src, t.dst); err != nil {
				Error.Println(err)
				return false
			}
			return true
		}
	}

	srcName := strings.Join(t.srcs, " + ")
	if 1 < len(t.srcs) {
		srcName = "(" + srcName + ")"
	}
	if srcName == "" {
		srcName = "stdin"
	}
	dstName := t.dst
	if dstName == "" {
		dstName = "stdout"
	} else {
		// rename original when overwriting
		for i := range t.srcs {
			if sameFile, _ := SameFile(t.srcs[i], t.dst); sameFile {
				t.srcs[i] += ".bak"
				err := try.Do(func(attempt int) (bool, error) {
					ferr := os.Rename(t.dst, t.srcs[i])
					return attempt < 5, ferr
				})
				if err != nil {
					Error.Println(err)
					return false
				}
				break
			}
		}
	}

	fr, err := openInputs(t.srcs)
	if err != nil {
		Error.Println(err)
		return false
	}
	fw, err := openOutputFile(t.dst)
	if err != nil {
		Error.Println(err)
		fr.Close()
		return false
	}

	if t.sync {
		_, err = io.Copy(fw, fr)
		fr.Close()
		fw.Close()
		if err != nil {
			Error.Println(err)
			return false
		}
		preserveAttributes(t.srcs[0], t.root, t.dst)
		Info.Println("copy", srcName, "to", dstName)
		return true
	}

	b, err := io.ReadAll(fr)
	if err != nil {
		fr.Close()
		fw.Close()
		Error.Println("cannot rewrite "+srcName+":", err)
		return false
	}
	w := bytes.NewBuffer(make([]byte, 0, len(b)))

	success := true
	startTime := time.Now()
	errs := &cssom.LogHandler{Error: Warning, Warning: Info, Prefix: srcName + ": "}
	if strict {
		errs.Error = Error
	}
	if err = stylesheet.Rewrite(w, bytes.NewReader(b), options, errs); err != nil {
		w = bytes.NewBuffer(b) // copy original
		Error.Println("cannot rewrite "+srcName+":", err)
		success = false
	} else if strict && errs.HasErrors() {
		w = bytes.NewBuffer(b)
		success = false
	}

	rLen, wLen := len(b), w.Len()
	_, err = io.Copy(fw, w)
	fr.Close()
	fw.Close()

	if !quiet {
		fmt.Println(stats(time.Since(startTime), rLen, wLen), "-", srcName, "to", dstName)
	}

	// remove original that was renamed, when overwriting files
	for i := range t.srcs {
		if t.srcs[i] == t.dst+".bak" {
			if err == nil {
				if err = os.Remove(t.srcs[i]); err != nil {
					Error.Println(err)
					return false
				}
			} else {
				if err = os.Remove(t.dst); err != nil {
					Error.Println(err)
					return false
				} else if err = os.Rename(t.srcs[i], t.dst); err != nil {
					Error.Println(err)
					return false
				}
			}
			t.srcs[i] = t.dst
			break
		}
	}
	preserveAttributes(t.srcs[0], t.root, t.dst)
	return success
}

// stats formats the duration, sizes, ratio and speed of a rewrite.
func stats(dur time.Duration, rLen, wLen int) string {
	speed := "Inf MB"
	if 0 < dur {
		speed = humanize.Bytes(uint64(float64(rLen) / dur.Seconds()))
	}
	ratio := 1.0
	if 0 < rLen {
		ratio = float64(wLen) / float64(rLen)
	}
	return fmt.Sprintf("(%9v, %6v, %6v, %5.1f%%, %6v/s)", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(wLen)), ratio*100, speed)
}

func preserveAttributes(src, root, dst string) {
	if src == "" || dst == "" {
		return
	}

	// only set attributes on directories and files inside the root destination
	var err error
	src, err = filepath.Rel(root, src)
	if err != nil {
		Error.Printf("src is not part of root path: src=%s root=%s", src, root)
		return
	}

	for {
		srcInfo, err := os.Stat(filepath.Join(root, src))
		if err != nil {
			Warning.Println(err)
			return
		}
		if preserveMode {
			if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
				Warning.Println(err)
			}
		}
		if preserveOwnership {
			if uid, gid, ok := getOwnership(srcInfo); ok {
				if err := os.Chown(dst, uid, gid); err != nil {
					Warning.Println(err)
				}
			}
		}
		if preserveTimestamps {
			if err := os.Chtimes(dst, atime.Get(srcInfo), srcInfo.ModTime()); err != nil {
				Warning.Println(err)
			}
		}

		// go up to but excluding the root path
		src = filepath.Dir(src)
		dst = filepath.Dir(dst)
		if src == "." {
			return
		}
	}
}
