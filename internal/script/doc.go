// Package script translates reconstructed Dockerfile instructions into a
// POSIX shell script that replays the image build steps on a bare host.
//
// Each instruction translates independently:
//   - RUN becomes the command itself, with backtick command substitution
//     rewritten as "$(...)".
//   - ENV becomes an export statement.
//   - WORKDIR becomes mkdir -p plus cd.
//   - ADD becomes a wget invocation.
//   - COPY embeds the source file into the script as a bzip2-compressed,
//     base64-encoded here-document decoded at run time.
//   - ARG passes through as a plain shell assignment.
//   - Instructions with no host equivalent (FROM, CMD, EXPOSE, ...) become
//     commented placeholder blocks.
//   - Unknown instructions produce no output.
//
// Only COPY touches the filesystem; every other translation is a pure
// string transform.
package script
