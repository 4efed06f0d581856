package pq

// Entry is a label with an integer priority. Entries are values; a queue
// copies them in and hands back only the label on extraction.
type Entry struct {
	Label    string
	Priority int
}
