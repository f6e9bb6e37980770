package batch

// Contains the options needed for a batch conversion run
type Options struct {
	Input            string // Input CSV file/folder
	Output           string // Output folder for converted files
	Geographic       bool   // Interpret input columns as lon/lat instead of easting/northing
	FolderProcessing bool   // Enables the processing of all CSV files in folder
	Recursive        bool   // Recursive lookup of CSV files in subfolders
	WorkerCount      int    // Number of conversion workers, defaults to NumCPU
}
