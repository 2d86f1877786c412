// Package model defines the value types shared by the rover packages.
//
// # Dataset
//
// Dataset is a single manifest entry:
//
//	ds := model.Dataset{
//	    Filename:    "iris.csv",
//	    Description: "Fisher's iris flower dataset",
//	    URL:         "https://example.org/iris.csv",
//	}
//	fmt.Print(ds.Info())
//
// Datasets are owned by a manifest and only read by the resolver and
// fetcher; nothing in rover mutates them after load.
package model
