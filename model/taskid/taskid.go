// Package taskid defines the closed catalogue of task identifiers used by
// the multistage time-integration task list (spec.md §4.3). Each id
// occupies exactly one bit of a 64-bit mask so that dependency sets compose
// with bitwise OR and readiness is a single AND comparison.
package taskid

import "fmt"

// ID is a single-bit task identifier. The zero value, None, has no bits set
// and is used as the "no dependency" mask.
type ID uint64

// None is the empty dependency mask: a task with this dependency is ready
// immediately, e.g. a receive task that may arrive at any time.
const None ID = 0

// The closed set of task ids, one bit each, grounded on
// time_integrator.cpp's HydroIntegratorTaskNames enum.
const (
	CalcHydFlx ID = 1 << iota
	CalcFldFlx
	CalcRadFlx
	CalcSclrFlx

	SendHydFlx
	RecvHydFlx
	SendFldFlx
	RecvFldFlx
	SendRadFlx
	RecvRadFlx
	SendSclrFlx
	RecvSclrFlx

	DiffuseHyd
	DiffuseFld
	DiffuseSclr

	IntHyd
	IntFld
	IntRad
	IntSclr

	SrcTermHyd
	SrcTermRad

	SendHyd
	RecvHyd
	SetBHyd

	SendFld
	RecvFld
	SetBFld

	SendRad
	RecvRad
	SetBRad

	SendSclr
	RecvSclr
	SetBSclr

	SendHydSh
	RecvHydSh

	SendFldSh
	RecvFldSh

	SendEMFSh
	RecvEMFSh
	RmapEMFSh

	Prolong
	Cons2Prim
	PhyBVal
	CalcOpacity
	UserWork
	NewDt
	FlagAMR
	ClearAllBnd
)

var names = map[ID]string{
	CalcHydFlx:  "CALC_HYDFLX",
	CalcFldFlx:  "CALC_FLDFLX",
	CalcRadFlx:  "CALC_RADFLX",
	CalcSclrFlx: "CALC_SCLRFLX",

	SendHydFlx:  "SEND_HYDFLX",
	RecvHydFlx:  "RECV_HYDFLX",
	SendFldFlx:  "SEND_FLDFLX",
	RecvFldFlx:  "RECV_FLDFLX",
	SendRadFlx:  "SEND_RADFLX",
	RecvRadFlx:  "RECV_RADFLX",
	SendSclrFlx: "SEND_SCLRFLX",
	RecvSclrFlx: "RECV_SCLRFLX",

	DiffuseHyd:  "DIFFUSE_HYD",
	DiffuseFld:  "DIFFUSE_FLD",
	DiffuseSclr: "DIFFUSE_SCLR",

	IntHyd:  "INT_HYD",
	IntFld:  "INT_FLD",
	IntRad:  "INT_RAD",
	IntSclr: "INT_SCLR",

	SrcTermHyd: "SRCTERM_HYD",
	SrcTermRad: "SRCTERM_RAD",

	SendHyd: "SEND_HYD",
	RecvHyd: "RECV_HYD",
	SetBHyd: "SETB_HYD",

	SendFld: "SEND_FLD",
	RecvFld: "RECV_FLD",
	SetBFld: "SETB_FLD",

	SendRad: "SEND_RAD",
	RecvRad: "RECV_RAD",
	SetBRad: "SETB_RAD",

	SendSclr: "SEND_SCLR",
	RecvSclr: "RECV_SCLR",
	SetBSclr: "SETB_SCLR",

	SendHydSh: "SEND_HYDSH",
	RecvHydSh: "RECV_HYDSH",

	SendFldSh: "SEND_FLDSH",
	RecvFldSh: "RECV_FLDSH",

	SendEMFSh: "SEND_EMFSH",
	RecvEMFSh: "RECV_EMFSH",
	RmapEMFSh: "RMAP_EMFSH",

	Prolong:     "PROLONG",
	Cons2Prim:   "CONS2PRIM",
	PhyBVal:     "PHY_BVAL",
	CalcOpacity: "CALC_OPACITY",
	UserWork:    "USERWORK",
	NewDt:       "NEW_DT",
	FlagAMR:     "FLAG_AMR",
	ClearAllBnd: "CLEAR_ALLBND",
}

// String returns the canonical VERB_OBJECT task name, or a hex fallback for
// an id outside the catalogue (which should never happen for a validated
// task list).
func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("ID(0x%x)", uint64(id))
}

// Known reports whether id is a single recognized catalogue bit.
func Known(id ID) bool {
	_, ok := names[id]
	return ok
}

// All returns every catalogue id, in ascending bit order.
func All() []ID {
	ids := make([]ID, 0, len(names))
	for id := CalcHydFlx; id <= ClearAllBnd; id <<= 1 {
		if _, ok := names[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
