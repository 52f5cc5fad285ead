// Copyright (c) 2024 Neomantra Corp
//
// The full STDF V4 + 2007 scan-test addendum record registry. Field name,
// order, and missing/invalid conventions are grounded in the STDF V4
// specification's per-record "Data Fields" tables (the same tables
// reproduced in the ATDF reference implementation's per-record docstrings
// this codec's ATDF schemas in atdf_schema.go were built from).
//
// The 2007 addendum records (VUR, PSR, NMR, CNR, SSR, CDR, STR) postdate
// both historical ATDF/STDF reference sources available to this codec and
// are reconstructed from the public STDF V4-2007 specification text; see
// DESIGN.md.

package stdf

var (
	u1Missing = literal(uintValue(255))
	u2Missing = literal(uintValue(65535))
	u4Missing = literal(uintValue(4294967295))
	i1Missing = literal(intValue(-128))
	i2Missing = literal(intValue(-32768))
	i4Missing = literal(intValue(-2147483648))
	r4Missing = literal(floatValue(-1e30))
	r8Missing = literal(floatValue(-1e300))
	cnMissing = literal(stringValue(""))
	c1Missing = literal(stringValue(" "))
)

func init() {
	registerFar()
	registerAtr()
	registerVur()
	registerMir()
	registerMrr()
	registerPcr()
	registerHbr()
	registerSbr()
	registerPmr()
	registerPgr()
	registerPlr()
	registerRdr()
	registerSdr()
	registerPsr()
	registerNmr()
	registerCnr()
	registerSsr()
	registerCdr()
	registerWir()
	registerWrr()
	registerWcr()
	registerPir()
	registerPrr()
	registerTsr()
	registerPtr()
	registerMpr()
	registerFtr()
	registerStr()
	registerBps()
	registerEps()
	registerGdr()
	registerDtr()
}

// --- FAR: File Attributes Record (0, 10) ---------------------------------

func registerFar() {
	register(RecordSchema{
		Name: "FAR", Major: 0, Minor: 10,
		Fields: []FieldSpec{
			{Name: "CPU_TYPE", Tag: TagU1, Sentinel: required()},
			{Name: "STDF_VER", Tag: TagU1, Sentinel: required()},
		},
	})
}

// --- ATR: Audit Trail Record (0, 20) --------------------------------------

func registerAtr() {
	register(RecordSchema{
		Name: "ATR", Major: 0, Minor: 20,
		Fields: []FieldSpec{
			{Name: "MOD_TIM", Tag: TagU4, Sentinel: u4Missing},
			{Name: "CMD_LINE", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- VUR: Version Update Record (0, 30), 2007 addendum --------------------

func registerVur() {
	register(RecordSchema{
		Name: "VUR", Major: 0, Minor: 30,
		Fields: []FieldSpec{
			{Name: "UPD_NAM", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- MIR: Master Information Record (1, 10) -------------------------------

func registerMir() {
	register(RecordSchema{
		Name: "MIR", Major: 1, Minor: 10,
		Fields: []FieldSpec{
			{Name: "SETUP_T", Tag: TagU4, Sentinel: u4Missing},
			{Name: "START_T", Tag: TagU4, Sentinel: u4Missing},
			{Name: "STAT_NUM", Tag: TagU1, Sentinel: u1Missing},
			{Name: "MODE_COD", Tag: TagC1, Sentinel: c1Missing},
			{Name: "RTST_COD", Tag: TagC1, Sentinel: c1Missing},
			{Name: "PROT_COD", Tag: TagC1, Sentinel: c1Missing},
			{Name: "BURN_TIM", Tag: TagU2, Sentinel: u2Missing},
			{Name: "CMOD_COD", Tag: TagC1, Sentinel: c1Missing},
			{Name: "LOT_ID", Tag: TagCn, Sentinel: required()},
			{Name: "PART_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "NODE_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TSTR_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "JOB_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "JOB_REV", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SBLOT_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPER_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXEC_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXEC_VER", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TEST_COD", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TST_TEMP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "USER_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "AUX_FILE", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PKG_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FAMILY_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "DATE_COD", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FACIL_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FLOOR_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PROC_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPER_FRQ", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SPEC_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SPEC_VER", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FLOW_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SETUP_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "DSGN_REV", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ENG_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ROM_COD", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SERL_NUM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SUPR_NAM", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- MRR: Master Results Record (1, 20) -----------------------------------

func registerMrr() {
	register(RecordSchema{
		Name: "MRR", Major: 1, Minor: 20,
		Fields: []FieldSpec{
			{Name: "FINISH_T", Tag: TagU4, Sentinel: required()},
			{Name: "DISP_COD", Tag: TagC1, Sentinel: c1Missing},
			{Name: "USR_DESC", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXC_DESC", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- PCR: Part Count Record (1, 30) ---------------------------------------

func registerPcr() {
	register(RecordSchema{
		Name: "PCR", Major: 1, Minor: 30,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "PART_CNT", Tag: TagU4, Sentinel: required()},
			{Name: "RTST_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "ABRT_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "GOOD_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "FUNC_CNT", Tag: TagU4, Sentinel: u4Missing},
		},
	})
}

// --- HBR: Hardware Bin Record (1, 40) -------------------------------------

func registerHbr() {
	register(RecordSchema{
		Name: "HBR", Major: 1, Minor: 40,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "HBIN_NUM", Tag: TagU2, Sentinel: required()},
			{Name: "HBIN_CNT", Tag: TagU4, Sentinel: required()},
			{Name: "HBIN_PF", Tag: TagC1, Sentinel: c1Missing},
			{Name: "HBIN_NAM", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- SBR: Software Bin Record (1, 50) -------------------------------------

func registerSbr() {
	register(RecordSchema{
		Name: "SBR", Major: 1, Minor: 50,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SBIN_NUM", Tag: TagU2, Sentinel: required()},
			{Name: "SBIN_CNT", Tag: TagU4, Sentinel: required()},
			{Name: "SBIN_PF", Tag: TagC1, Sentinel: c1Missing},
			{Name: "SBIN_NAM", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- PMR: Pin Map Record (1, 60) ------------------------------------------

func registerPmr() {
	register(RecordSchema{
		Name: "PMR", Major: 1, Minor: 60,
		Fields: []FieldSpec{
			{Name: "PMR_INDX", Tag: TagU2, Sentinel: required()},
			{Name: "CHAN_TYP", Tag: TagU2, Sentinel: u2Missing},
			{Name: "CHAN_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PHY_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LOG_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: literal(uintValue(1))},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: literal(uintValue(1))},
		},
	})
}

// --- PGR: Pin Group Record (1, 62) ----------------------------------------

func registerPgr() {
	register(RecordSchema{
		Name: "PGR", Major: 1, Minor: 62,
		Fields: []FieldSpec{
			{Name: "GRP_INDX", Tag: TagU2, Sentinel: required()},
			{Name: "GRP_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "INDX_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "PMR_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "INDX_CNT", Sentinel: required()},
		},
	})
}

// --- PLR: Pin List Record (1, 63) ------------------------------------------

func registerPlr() {
	register(RecordSchema{
		Name: "PLR", Major: 1, Minor: 63,
		Fields: []FieldSpec{
			{Name: "GRP_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "GRP_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "GRP_CNT", Sentinel: required()},
			{Name: "GRP_MODE", Tag: TagArray, ElementTag: TagU2, CountField: "GRP_CNT", Sentinel: literal(uintValue(0))},
			{Name: "GRP_RADX", Tag: TagArray, ElementTag: TagU1, CountField: "GRP_CNT", Sentinel: literal(uintValue(0))},
			{Name: "PGM_CHAR", Tag: TagArray, ElementTag: TagCn, CountField: "GRP_CNT", Sentinel: cnMissing},
			{Name: "RTN_CHAR", Tag: TagArray, ElementTag: TagCn, CountField: "GRP_CNT", Sentinel: cnMissing},
			{Name: "PGM_CHAL", Tag: TagArray, ElementTag: TagCn, CountField: "GRP_CNT", Sentinel: cnMissing},
			{Name: "RTN_CHAL", Tag: TagArray, ElementTag: TagCn, CountField: "GRP_CNT", Sentinel: cnMissing},
		},
	})
}

// --- RDR: Retest Data Record (1, 70) --------------------------------------

func registerRdr() {
	register(RecordSchema{
		Name: "RDR", Major: 1, Minor: 70,
		Fields: []FieldSpec{
			{Name: "NUM_BINS", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "RTST_BIN", Tag: TagArray, ElementTag: TagU2, CountField: "NUM_BINS", Sentinel: required()},
		},
	})
}

// --- SDR: Site Description Record (1, 80) ---------------------------------

func registerSdr() {
	register(RecordSchema{
		Name: "SDR", Major: 1, Minor: 80,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_GRP", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_CNT", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagArray, ElementTag: TagU1, CountField: "SITE_CNT", Sentinel: required()},
			{Name: "HAND_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "HAND_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CARD_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CARD_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LOAD_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LOAD_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "DIB_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "DIB_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CABL_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CABL_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CONT_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CONT_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LASR_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LASR_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXTR_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXTR_ID", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- PSR: Pattern Sequence Record (1, 90), 2007 addendum ------------------

func registerPsr() {
	register(RecordSchema{
		Name: "PSR", Major: 1, Minor: 90,
		Fields: []FieldSpec{
			{Name: "CONT_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "PSR_INDX", Tag: TagU2, Sentinel: required()},
			{Name: "PSR_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPT_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "TOTP_CNT", Tag: TagU2, Sentinel: u2Missing},
			{Name: "LOCP_CNT", Tag: TagU2, Sentinel: required()},
			{Name: "PAT_BGN", Tag: TagArray, ElementTag: TagU8, CountField: "LOCP_CNT", Sentinel: u4Missing},
			{Name: "PAT_END", Tag: TagArray, ElementTag: TagU8, CountField: "LOCP_CNT", Sentinel: u4Missing},
			{Name: "PAT_FILE", Tag: TagArray, ElementTag: TagCn, CountField: "LOCP_CNT", Sentinel: cnMissing},
			{Name: "PAT_LBL", Tag: TagArray, ElementTag: TagCn, CountField: "LOCP_CNT", Sentinel: cnMissing},
			{Name: "FILE_UID", Tag: TagArray, ElementTag: TagCn, CountField: "LOCP_CNT", Sentinel: cnMissing},
			{Name: "ATPG_DSC", Tag: TagArray, ElementTag: TagCn, CountField: "LOCP_CNT", Sentinel: cnMissing},
			{Name: "SRC_ID", Tag: TagArray, ElementTag: TagCn, CountField: "LOCP_CNT", Sentinel: cnMissing},
		},
	})
}

// --- NMR: Name Map Record (1, 91), 2007 addendum --------------------------

func registerNmr() {
	register(RecordSchema{
		Name: "NMR", Major: 1, Minor: 91,
		Fields: []FieldSpec{
			{Name: "CONT_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "TOTM_CNT", Tag: TagU2, Sentinel: u2Missing},
			{Name: "LOCM_CNT", Tag: TagU2, Sentinel: required()},
			{Name: "PMR_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "LOCM_CNT", Sentinel: required()},
			{Name: "ATPG_NAM", Tag: TagArray, ElementTag: TagCn, CountField: "LOCM_CNT", Sentinel: cnMissing},
		},
	})
}

// --- CNR: Cell Name Record (1, 92), 2007 addendum -------------------------

func registerCnr() {
	register(RecordSchema{
		Name: "CNR", Major: 1, Minor: 92,
		Fields: []FieldSpec{
			{Name: "CHN_NUM", Tag: TagU2, Sentinel: required()},
			{Name: "BIT_POS", Tag: TagU4, Sentinel: required()},
			{Name: "CELL_NAM", Tag: TagSn, Sentinel: cnMissing},
		},
	})
}

// --- SSR: Scan Structure Record (1, 93), 2007 addendum --------------------

func registerSsr() {
	register(RecordSchema{
		Name: "SSR", Major: 1, Minor: 93,
		Fields: []FieldSpec{
			{Name: "SSR_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CHN_CNT", Tag: TagU2, Sentinel: required()},
			{Name: "CHN_LIST", Tag: TagArray, ElementTag: TagU2, CountField: "CHN_CNT", Sentinel: required()},
		},
	})
}

// --- CDR: Chain Description Record (1, 94), 2007 addendum -----------------

func registerCdr() {
	register(RecordSchema{
		Name: "CDR", Major: 1, Minor: 94,
		Fields: []FieldSpec{
			{Name: "CONT_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "CHN_NUM", Tag: TagU2, Sentinel: required()},
			{Name: "CHN_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CHN_LEN", Tag: TagU4, Sentinel: u4Missing},
			{Name: "SIN_PIN", Tag: TagU2, Sentinel: u2Missing},
			{Name: "SOUT_PIN", Tag: TagU2, Sentinel: u2Missing},
			{Name: "MSTR_CNT", Tag: TagU1, Sentinel: literal(uintValue(0))},
			{Name: "M_CLKS", Tag: TagArray, ElementTag: TagU2, CountField: "MSTR_CNT", Sentinel: required()},
			{Name: "SLAV_CNT", Tag: TagU1, Sentinel: literal(uintValue(0))},
			{Name: "S_CLKS", Tag: TagArray, ElementTag: TagU2, CountField: "SLAV_CNT", Sentinel: required()},
			{Name: "CELL_CNT", Tag: TagU2, Sentinel: u2Missing},
			{Name: "CELL_LST", Tag: TagArray, ElementTag: TagCn, CountField: "CELL_CNT", Sentinel: cnMissing},
		},
	})
}

// --- WIR: Wafer Information Record (2, 10) --------------------------------

func registerWir() {
	register(RecordSchema{
		Name: "WIR", Major: 2, Minor: 10,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_GRP", Tag: TagU1, Sentinel: literal(uintValue(255))},
			{Name: "START_T", Tag: TagU4, Sentinel: required()},
			{Name: "WAFER_ID", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- WRR: Wafer Results Record (2, 20) ------------------------------------

func registerWrr() {
	register(RecordSchema{
		Name: "WRR", Major: 2, Minor: 20,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_GRP", Tag: TagU1, Sentinel: literal(uintValue(255))},
			{Name: "FINISH_T", Tag: TagU4, Sentinel: required()},
			{Name: "PART_CNT", Tag: TagU4, Sentinel: required()},
			{Name: "RTST_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "ABRT_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "GOOD_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "FUNC_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "WAFER_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FABWF_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "FRAME_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "MASK_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "USR_DESC", Tag: TagCn, Sentinel: cnMissing},
			{Name: "EXC_DESC", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- WCR: Wafer Configuration Record (2, 30) ------------------------------

func registerWcr() {
	register(RecordSchema{
		Name: "WCR", Major: 2, Minor: 30,
		Fields: []FieldSpec{
			{Name: "WAFR_SIZ", Tag: TagR4, Sentinel: literal(floatValue(0))},
			{Name: "DIE_HT", Tag: TagR4, Sentinel: literal(floatValue(0))},
			{Name: "DIE_WID", Tag: TagR4, Sentinel: literal(floatValue(0))},
			{Name: "WF_UNITS", Tag: TagU1, Sentinel: literal(uintValue(0))},
			{Name: "WF_FLAT", Tag: TagC1, Sentinel: literal(stringValue(" "))},
			{Name: "CENTER_X", Tag: TagI2, Sentinel: i2Missing},
			{Name: "CENTER_Y", Tag: TagI2, Sentinel: i2Missing},
			{Name: "POS_X", Tag: TagC1, Sentinel: literal(stringValue(" "))},
			{Name: "POS_Y", Tag: TagC1, Sentinel: literal(stringValue(" "))},
		},
	})
}

// --- PIR: Part Information Record (5, 10) ---------------------------------

func registerPir() {
	register(RecordSchema{
		Name: "PIR", Major: 5, Minor: 10,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
		},
	})
}

// --- PRR: Part Results Record (5, 20) -------------------------------------

func registerPrr() {
	register(RecordSchema{
		Name: "PRR", Major: 5, Minor: 20,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "PART_FLG", Tag: TagB1, Sentinel: required()},
			{Name: "NUM_TEST", Tag: TagU2, Sentinel: u2Missing},
			{Name: "HARD_BIN", Tag: TagU2, Sentinel: required()},
			{Name: "SOFT_BIN", Tag: TagU2, Sentinel: literal(uintValue(65535))},
			{Name: "X_COORD", Tag: TagI2, Sentinel: i2Missing},
			{Name: "Y_COORD", Tag: TagI2, Sentinel: i2Missing},
			{Name: "TEST_T", Tag: TagU4, Sentinel: literal(uintValue(0))},
			{Name: "PART_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PART_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PART_FIX", Tag: TagBn, Sentinel: literal(bytesValue(nil))},
		},
	})
}

// --- TSR: Test Synopsis Record (10, 30) -----------------------------------

func registerTsr() {
	register(RecordSchema{
		Name: "TSR", Major: 10, Minor: 30,
		Fields: []FieldSpec{
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: literal(uintValue(255))},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: literal(uintValue(255))},
			{Name: "TEST_TYP", Tag: TagC1, Sentinel: literal(stringValue(" "))},
			{Name: "TEST_NUM", Tag: TagU4, Sentinel: required()},
			{Name: "EXEC_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "FAIL_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "ALRM_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "TEST_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "SEQ_NAME", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TEST_LBL", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPT_FLAG", Tag: TagB1, Sentinel: literal(uintValue(0xFF))},
			{Name: "TEST_TIM", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", 0x02)},
			{Name: "TEST_MIN", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", 0x04)},
			{Name: "TEST_MAX", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", 0x08)},
			{Name: "TST_SUMS", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", 0x10)},
			{Name: "TST_SQRS", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", 0x20)},
		},
	})
}

// --- PTR: Parametric Test Record (15, 10) ---------------------------------

func registerPtr() {
	register(RecordSchema{
		Name: "PTR", Major: 15, Minor: 10,
		Fields: []FieldSpec{
			{Name: "TEST_NUM", Tag: TagU4, Sentinel: required()},
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "TEST_FLG", Tag: TagB1, Sentinel: required()},
			{Name: "PARM_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "RESULT", Tag: TagR4, Sentinel: flagGated("TEST_FLG", 1<<TestFlagBit_Invalid)},
			{Name: "TEST_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ALARM_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPT_FLAG", Tag: TagB1, Sentinel: literal(uintValue(0xFF))},
			{Name: "RES_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoResScal)},
			{Name: "LLM_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoLLimScal)},
			{Name: "HLM_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoHLimScal)},
			{Name: "LO_LIMIT", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", OptFlagMask_NoLowLimit)},
			{Name: "HI_LIMIT", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", OptFlagMask_NoHighLimit)},
			{Name: "UNITS", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_RESFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_LLMFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_HLMFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LO_SPEC", Tag: TagR4, Sentinel: r4Missing},
			{Name: "HI_SPEC", Tag: TagR4, Sentinel: r4Missing},
		},
	})
}

// --- MPR: Multiple-Result Parametric Record (15, 15) ----------------------

func registerMpr() {
	register(RecordSchema{
		Name: "MPR", Major: 15, Minor: 15,
		Fields: []FieldSpec{
			{Name: "TEST_NUM", Tag: TagU4, Sentinel: required()},
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "TEST_FLG", Tag: TagB1, Sentinel: required()},
			{Name: "PARM_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "RTN_ICNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "RSLT_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "RTN_STAT", Tag: TagArray, ElementTag: TagN1, CountField: "RTN_ICNT", Sentinel: required()},
			{Name: "RTN_RSLT", Tag: TagArray, ElementTag: TagR4, CountField: "RSLT_CNT", Sentinel: required()},
			{Name: "TEST_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ALARM_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPT_FLAG", Tag: TagB1, Sentinel: literal(uintValue(0xFF))},
			{Name: "RES_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoResScal)},
			{Name: "LLM_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoLLimScal)},
			{Name: "HLM_SCAL", Tag: TagI1, Sentinel: flagGated("OPT_FLAG", 1<<OptFlagBit_NoHLimScal)},
			{Name: "LO_LIMIT", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", OptFlagMask_NoLowLimit)},
			{Name: "HI_LIMIT", Tag: TagR4, Sentinel: flagGated("OPT_FLAG", OptFlagMask_NoHighLimit)},
			{Name: "START_IN", Tag: TagR4, Sentinel: r4Missing},
			{Name: "INCR_IN", Tag: TagR4, Sentinel: r4Missing},
			{Name: "RTN_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "RTN_ICNT", Sentinel: required()},
			{Name: "UNITS", Tag: TagCn, Sentinel: cnMissing},
			{Name: "UNITS_IN", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_RESFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_LLMFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "C_HLMFMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "LO_SPEC", Tag: TagR4, Sentinel: r4Missing},
			{Name: "HI_SPEC", Tag: TagR4, Sentinel: r4Missing},
		},
	})
}

// --- FTR: Functional Test Record (15, 20) ---------------------------------

func registerFtr() {
	register(RecordSchema{
		Name: "FTR", Major: 15, Minor: 20,
		Fields: []FieldSpec{
			{Name: "TEST_NUM", Tag: TagU4, Sentinel: required()},
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "TEST_FLG", Tag: TagB1, Sentinel: required()},
			{Name: "OPT_FLAG", Tag: TagB1, Sentinel: literal(uintValue(0xFF))},
			{Name: "CYCL_CNT", Tag: TagU4, Sentinel: flagGated("OPT_FLAG", 0x01)},
			{Name: "REL_VADR", Tag: TagU4, Sentinel: flagGated("OPT_FLAG", 0x02)},
			{Name: "REPT_CNT", Tag: TagU4, Sentinel: flagGated("OPT_FLAG", 0x04)},
			{Name: "NUM_FAIL", Tag: TagU4, Sentinel: flagGated("OPT_FLAG", 0x08)},
			{Name: "XFAIL_AD", Tag: TagI4, Sentinel: flagGated("OPT_FLAG", 0x10)},
			{Name: "YFAIL_AD", Tag: TagI4, Sentinel: flagGated("OPT_FLAG", 0x10)},
			{Name: "VECT_OFF", Tag: TagI2, Sentinel: flagGated("OPT_FLAG", 0x20)},
			{Name: "RTN_ICNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "PGM_ICNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "RTN_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "RTN_ICNT", Sentinel: required()},
			{Name: "RTN_STAT", Tag: TagArray, ElementTag: TagN1, CountField: "RTN_ICNT", Sentinel: required()},
			{Name: "PGM_INDX", Tag: TagArray, ElementTag: TagU2, CountField: "PGM_ICNT", Sentinel: required()},
			{Name: "PGM_STAT", Tag: TagArray, ElementTag: TagN1, CountField: "PGM_ICNT", Sentinel: required()},
			{Name: "FAIL_PIN", Tag: TagDn, Sentinel: literal(bytesValue(nil))},
			{Name: "VECT_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TIME_SET", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OP_CODE", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TEST_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ALARM_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PROG_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "RSLT_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "PATG_NUM", Tag: TagU1, Sentinel: u1Missing},
			{Name: "SPIN_MAP", Tag: TagDn, Sentinel: literal(bytesValue(nil))},
		},
	})
}

// --- STR: Scan Test Record (15, 30), 2007 addendum ------------------------

func registerStr() {
	register(RecordSchema{
		Name: "STR", Major: 15, Minor: 30,
		Fields: []FieldSpec{
			{Name: "CONT_FLG", Tag: TagB1, Sentinel: literal(uintValue(0))},
			{Name: "TEST_NUM", Tag: TagU4, Sentinel: required()},
			{Name: "HEAD_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "SITE_NUM", Tag: TagU1, Sentinel: required()},
			{Name: "PSR_REF", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "TEST_FLG", Tag: TagB1, Sentinel: required()},
			{Name: "LOG_TYP", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TEST_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "ALARM_ID", Tag: TagCn, Sentinel: cnMissing},
			{Name: "OPT_FLAG", Tag: TagB1, Sentinel: literal(uintValue(0xFF))},
			{Name: "PROG_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "RSLT_TXT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "Z_VAL", Tag: TagU1, Sentinel: literal(uintValue(0))},
			{Name: "FAIL_CNT", Tag: TagU4, Sentinel: u4Missing},
			{Name: "VECT_NAM", Tag: TagCn, Sentinel: cnMissing},
			{Name: "TIME_SET", Tag: TagCn, Sentinel: cnMissing},
			{Name: "VECT_FMT", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CYCL_BASE", Tag: TagCn, Sentinel: cnMissing},
			{Name: "BIT_BASE", Tag: TagCn, Sentinel: cnMissing},
			{Name: "CHN_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "CHN_NUM", Tag: TagArray, ElementTag: TagU2, CountField: "CHN_CNT", Sentinel: required()},
			{Name: "PAT_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "PAT_NUM", Tag: TagArray, ElementTag: TagU4, CountField: "PAT_CNT", Sentinel: required()},
			{Name: "BIT_CNT", Tag: TagU2, Sentinel: literal(uintValue(0))},
			{Name: "BIT_NUM", Tag: TagArray, ElementTag: TagU4, CountField: "BIT_CNT", Sentinel: required()},
			{Name: "FAIL_PIN", Tag: TagDn, Sentinel: literal(bytesValue(nil))},
		},
	})
}

// --- BPS: Begin Program Section Record (20, 10) ---------------------------

func registerBps() {
	register(RecordSchema{
		Name: "BPS", Major: 20, Minor: 10,
		Fields: []FieldSpec{
			{Name: "SEQ_NAME", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}

// --- EPS: End Program Section Record (20, 20) -----------------------------

func registerEps() {
	register(RecordSchema{
		Name: "EPS", Major: 20, Minor: 20,
		Fields: []FieldSpec{},
	})
}

// --- GDR: Generic Data Record (50, 10) ------------------------------------
//
// GDR is not a fixed field schema: its payload is FLD_CNT (U2) followed by
// that many tagged slots. Per §9's REDESIGN FLAGS, this is modeled as its
// own record kind whose single "field" decodes to a KindGeneric Value
// holding an ordered []GenericValue, rather than by mutating a shared
// schema table with a dynamically discovered field list.

func registerGdr() {
	register(RecordSchema{
		Name: "GDR", Major: 50, Minor: 10,
		Fields: []FieldSpec{
			{Name: "GEN_DATA", Tag: TagVn, Sentinel: required()},
		},
	})
}

// --- DTR: Datalog Text Record (50, 30) ------------------------------------

func registerDtr() {
	register(RecordSchema{
		Name: "DTR", Major: 50, Minor: 30,
		Fields: []FieldSpec{
			{Name: "TEXT_DAT", Tag: TagCn, Sentinel: cnMissing},
		},
	})
}
