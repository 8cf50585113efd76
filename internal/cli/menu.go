// ABOUTME: Interactive numbered menu loop
// ABOUTME: Each choice runs one wrapped operation; failures are printed, not fatal
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/report"
)

const menuText = `Enter your choice:
1. Log study time
2. View total study time today
3. View total hours for a specific date
4. View total hours for all dates
5. Exit
<--: `

// runMenu loops until the exit choice or end of input.
func (a *app) runMenu(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		initRes := a.tracker.Init.Call(ctx)
		if !initRes.Ok() {
			printFailure(out, initRes.Failure())
		} else if initRes.Value() {
			fmt.Fprintf(out, "Data file created successfully: %s\n\n", a.cfg.DataFile)
		}

		fmt.Fprint(out, menuText)
		choice, err := readLine(reader)
		if err != nil {
			return endOfInput(out, err)
		}

		switch choice {
		case "1":
			fmt.Fprint(out, "Enter the subject: ")
			subject, err := readLine(reader)
			if err != nil {
				return endOfInput(out, err)
			}
			fmt.Fprint(out, "Enter the hours in format (hrs:mins) : ")
			hours, err := readLine(reader)
			if err != nil {
				return endOfInput(out, err)
			}
			res := a.tracker.LogStudy.Call(ctx, subject, hours)
			if res.Ok() {
				fmt.Fprintln(out)
				printLogged(out, res.Value())
			} else {
				printFailure(out, res.Failure())
			}
		case "2":
			showSummary(out, a.tracker.ReportToday.Call(ctx))
		case "3":
			fmt.Fprint(out, "Enter the date (dd-mm-yyyy): ")
			date, err := readLine(reader)
			if err != nil {
				return endOfInput(out, err)
			}
			showSummary(out, a.tracker.ReportDate.Call(ctx, date))
		case "4":
			showSummary(out, a.tracker.ReportAll.Call(ctx))
		case "5":
			fmt.Fprintln(out, "Exiting...")
			return nil
		default:
			_, _ = failColor.Fprintln(out, "Invalid choice")
		}
		fmt.Fprintln(out)
	}
}

func showSummary(out io.Writer, res fault.Result[report.Summary]) {
	if !res.Ok() {
		printFailure(out, res.Failure())
		return
	}
	report.Render(out, res.Value())
}

// readLine returns one trimmed line. A final line without a newline is
// returned before io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func endOfInput(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return nil
	}
	return err
}
