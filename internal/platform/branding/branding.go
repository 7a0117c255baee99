// Package branding holds product naming shared by page chrome and SEO tags.
package branding

import "fmt"

// AppName is the product name shown in titles and the footer.
const AppName = "TopBrandsVN"

// CopyrightYear is printed in the page footer.
const CopyrightYear = 2025

// Copyright returns the footer notice.
func Copyright() string {
	return fmt.Sprintf("© %d %s", CopyrightYear, AppName)
}
