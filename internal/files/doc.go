// Package files locates input archives and exposes their tabular members.
//
// Discovery lists the archives in the input directory, sorted by name so that
// repeated runs read them in the same order. OpenArchive opens one zip archive
// and Members returns its .csv/.xlsx members in stored order.
//
// Example usage:
//
//	discovery := files.NewDiscovery(inputDir, []string{".zip"})
//	archives, err := discovery.FindArchives(inputDir)
//
//	archive, err := files.OpenArchive(archives[0].Path)
//	defer archive.Close()
//	for _, m := range archive.Members([]string{".csv"}) {
//	    rc, err := m.Open()
//	    ...
//	}
package files
