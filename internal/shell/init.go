// Package shell provides prompt status and shell integration scripts.
package shell

import (
	"fmt"
	"io"
)

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) {
	fmt.Fprint(w, `# gitdiary shell integration
__gitdiary_prompt_hook() {
  if [[ -f "${GITDIARY_DIARY_FILE:-git_diary.md}" ]]; then
    eval "$(command gitdiary status --env 2>/dev/null)"
  else
    unset GITDIARY_TODAY GITDIARY_STREAK GITDIARY_SUMMARY
  fi
}

gitdiary_prompt_info() {
  [[ -f "${GITDIARY_DIARY_FILE:-git_diary.md}" ]] && command gitdiary status 2>/dev/null
}

if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__gitdiary_prompt_hook"
else
  PROMPT_COMMAND="__gitdiary_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command gitdiary completion bash 2>/dev/null)"
`)
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) {
	fmt.Fprint(w, `# gitdiary shell integration
__gitdiary_prompt_hook() {
  if [[ -f "${GITDIARY_DIARY_FILE:-git_diary.md}" ]]; then
    eval "$(command gitdiary status --env 2>/dev/null)"
  else
    unset GITDIARY_TODAY GITDIARY_STREAK GITDIARY_SUMMARY
  fi
}

gitdiary_prompt_info() {
  [[ -f "${GITDIARY_DIARY_FILE:-git_diary.md}" ]] && command gitdiary status 2>/dev/null
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __gitdiary_prompt_hook

eval "$(command gitdiary completion zsh 2>/dev/null)"
`)
}
