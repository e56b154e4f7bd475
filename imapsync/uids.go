// SPDX-License-Identifier: GPL-3.0-or-later
package imapsync

import (
	"math/rand"
	"sort"
)

// subtractUids returns uids without the ones in remove, keeping the order.
func subtractUids(uids []uint32, remove []uint32) []uint32 {
	removeSet := uidSet(remove)
	result := make([]uint32, 0, len(uids))
	for _, uid := range uids {
		if !removeSet[uid] {
			result = append(result, uid)
		}
	}
	return result
}

func uidSet(uids ...[]uint32) map[uint32]bool {
	set := map[uint32]bool{}
	for _, list := range uids {
		for _, uid := range list {
			set[uid] = true
		}
	}
	return set
}

// sampleUids picks n uids without replacement and returns them sorted.
func sampleUids(r *rand.Rand, uids []uint32, n int) []uint32 {
	sample := append([]uint32{}, uids...)
	if n < len(sample) {
		for i := 0; i < n; i++ {
			j := i + r.Intn(len(sample)-i)
			sample[i], sample[j] = sample[j], sample[i]
		}
		sample = sample[:n]
	}

	sort.Slice(sample, func(i, j int) bool { return sample[i] < sample[j] })
	return sample
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partitionUids(uids []uint32, partitionSize int) [][]uint32 {
	batches := make([][]uint32, 0, (len(uids)+partitionSize-1)/partitionSize)

	for partitionSize < len(uids) {
		uids, batches = uids[partitionSize:], append(batches, uids[0:partitionSize:partitionSize])
	}
	batches = append(batches, uids)

	return batches
}
