package directory

import "sync"

var (
	defaultOnce      sync.Once
	defaultDirectory *Directory
)

// Default returns the compiled-in brand directory.
func Default() *Directory {
	defaultOnce.Do(func() {
		d, err := New(defaultCategories()...)
		if err != nil {
			panic(err)
		}
		defaultDirectory = d
	})
	return defaultDirectory
}

func defaultCategories() []Category {
	return []Category{
		Flat("finance", "gradient-emerald",
			"ACB",
			"Agribank",
			"BIDV",
			"MB",
			"Sacombank",
			"Techcombank",
			"VIB",
			"Vietcombank",
			"VietinBank",
		),
		Flat("telecom", "gradient-sky",
			"MobiFone",
			"Vietnamobile",
			"Viettel Group",
			"Vinaphone",
		),
		Flat("supermarket", "gradient-amber",
			"Bach Hoa Xanh",
			"Big C",
			"Co.opmart",
			"Emart",
			"Lotte Mart",
			"MM Mega Market",
			"WinMart",
		),
		Flat("mall", "gradient-rose",
			"AEON Mall",
			"Big C",
			"Co.opMart",
			"Lotte Mart",
			"Trang Tien Plaza",
			"Vincom Center",
		),
		Flat("mobile_retail", "gradient-indigo",
			"CellphoneS",
			"Điện Máy XANH",
			"FPT Shop",
			"The Gioi Di Dong (Thế Giới Di Động)",
			"Viettel Store",
		),
		Flat("convenience_store", "gradient-lime",
			"Circle K",
			"Co.op Food",
			"FamilyMart",
			"GS25",
			"MiniStop",
			"VinMart+",
		),
		Grouped("fashion", "gradient-fuchsia",
			NewGroup("female_fashion",
				"Chic-Land",
				"ELISE",
				"Ivy Moda",
				"JUNO",
				"Nem Fashion",
				"Seven AM",
			),
			NewGroup("male_fashion",
				"Coolmate",
				"LỰU ĐẠN",
				"Viet Tien",
			),
		),
		Grouped("dining", "gradient-orange",
			NewGroup("coffee_chains",
				"Cộng Cà Phê",
				"Highlands Coffee",
				"Katinat",
				"Phúc Long",
				"The Coffee House",
				"Trung Nguyên Legend",
			),
			NewGroup("restaurant_chains",
				"Cơm Tấm Cali",
				"Gogi House",
				"Kichi-Kichi",
				"Phở 24",
				"Pizza 4P's",
			),
		),
	}
}
