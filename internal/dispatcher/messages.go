package dispatcher

import "github.com/harrison/repoqa/internal/models"

// Fixed answer texts
const (
	HelpMessage         = "I can only answer questions about listing files, reading file contents, or searching for text within files."
	FilenamePrompt      = "I need a filename to read. Please specify which file."
	SearchTermPrompt    = "I need a search term. Please specify what to search for."
	listHeading         = "Files in the repository:"
	contentHeadingFmt   = "Content of '%s':"
	emptyFileFmt        = "File '%s' is empty."
	searchHeadingFmt    = "Search results for '%s':"
	noResultsFmt        = "No results found for '%s'."
	processingFailedFmt = "Error processing %s request: %v"
)

// processingKind names an intent in "Error processing ... request" messages
func processingKind(intent models.Intent) string {
	switch intent {
	case models.IntentList:
		return "file listing"
	case models.IntentRead:
		return "file reading"
	case models.IntentSearch:
		return "search"
	default:
		return string(intent)
	}
}
