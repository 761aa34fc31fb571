package analyzer

import "sort"

func sortVariants(vs []Variant) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].PkgPath != vs[j].PkgPath {
			return vs[i].PkgPath < vs[j].PkgPath
		}
		if vs[i].Name != vs[j].Name {
			return vs[i].Name < vs[j].Name
		}
		return vs[i].Interface < vs[j].Interface
	})
}
