// Package dockerfile reconstructs the logical instructions of a Dockerfile
// from its line-oriented source text. It handles backslash line continuation,
// comment lines, and case-insensitive instruction keywords, producing an
// ordered sequence of Instruction records that mirrors the execution order of
// the original build.
//
// The reconstruction is purely syntactic:
//   - A line of the form "KEYWORD rest" starts a new instruction.
//   - A trailing backslash continues the instruction on the next line.
//   - Comment lines (leading whitespace then '#') are skipped everywhere,
//     including inside a continuation, without ending it.
//   - Blank and malformed lines outside a continuation are skipped silently.
//   - Tab characters are removed from reconstructed values unless
//     WithKeepTabs is given.
//
// No semantic validation is performed; unknown keywords are preserved with
// KindUnknown so downstream consumers can decide how to handle them.
//
// Example usage:
//
//	instructions, err := dockerfile.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, inst := range instructions {
//	    fmt.Println(inst.Keyword, inst.Value)
//	}
package dockerfile
