package cpu

// definitions is the total opcode table of the 8080, indexed by opcode byte.
var definitions = [256]Definition{
	0x00: {Op: OP_NOP},
	0x01: {Op: OP_LXI, Shape: SHAPE_IMM16, Pair: PAIR_B},
	0x02: {Op: OP_STAX, Pair: PAIR_B},
	0x03: {Op: OP_INX, Pair: PAIR_B},
	0x04: {Op: OP_INR, Dst: REG_B, Flags: FLAGS_ZSP},
	0x05: {Op: OP_DCR, Dst: REG_B, Flags: FLAGS_ZSP},
	0x06: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_B},
	0x07: {Op: OP_RLC, Flags: FLAG_CARRY},
	0x08: {Op: OP_UNDEFINED},
	0x09: {Op: OP_DAD, Pair: PAIR_B, Flags: FLAG_CARRY},
	0x0a: {Op: OP_LDAX, Pair: PAIR_B},
	0x0b: {Op: OP_DCX, Pair: PAIR_B},
	0x0c: {Op: OP_INR, Dst: REG_C, Flags: FLAGS_ZSP},
	0x0d: {Op: OP_DCR, Dst: REG_C, Flags: FLAGS_ZSP},
	0x0e: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_C},
	0x0f: {Op: OP_RRC, Flags: FLAG_CARRY},
	0x10: {Op: OP_UNDEFINED},
	0x11: {Op: OP_LXI, Shape: SHAPE_IMM16, Pair: PAIR_D},
	0x12: {Op: OP_STAX, Pair: PAIR_D},
	0x13: {Op: OP_INX, Pair: PAIR_D},
	0x14: {Op: OP_INR, Dst: REG_D, Flags: FLAGS_ZSP},
	0x15: {Op: OP_DCR, Dst: REG_D, Flags: FLAGS_ZSP},
	0x16: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_D},
	0x17: {Op: OP_RAL, Flags: FLAG_CARRY},
	0x18: {Op: OP_UNDEFINED},
	0x19: {Op: OP_DAD, Pair: PAIR_D, Flags: FLAG_CARRY},
	0x1a: {Op: OP_LDAX, Pair: PAIR_D},
	0x1b: {Op: OP_DCX, Pair: PAIR_D},
	0x1c: {Op: OP_INR, Dst: REG_E, Flags: FLAGS_ZSP},
	0x1d: {Op: OP_DCR, Dst: REG_E, Flags: FLAGS_ZSP},
	0x1e: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_E},
	0x1f: {Op: OP_RAR, Flags: FLAG_CARRY},
	0x20: {Op: OP_UNDEFINED},
	0x21: {Op: OP_LXI, Shape: SHAPE_IMM16, Pair: PAIR_H},
	0x22: {Op: OP_SHLD, Shape: SHAPE_IMM16},
	0x23: {Op: OP_INX, Pair: PAIR_H},
	0x24: {Op: OP_INR, Dst: REG_H, Flags: FLAGS_ZSP},
	0x25: {Op: OP_DCR, Dst: REG_H, Flags: FLAGS_ZSP},
	0x26: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_H},
	0x27: {Op: OP_DAA, Flags: FLAGS_ALL},
	0x28: {Op: OP_UNDEFINED},
	0x29: {Op: OP_DAD, Pair: PAIR_H, Flags: FLAG_CARRY},
	0x2a: {Op: OP_LHLD, Shape: SHAPE_IMM16},
	0x2b: {Op: OP_DCX, Pair: PAIR_H},
	0x2c: {Op: OP_INR, Dst: REG_L, Flags: FLAGS_ZSP},
	0x2d: {Op: OP_DCR, Dst: REG_L, Flags: FLAGS_ZSP},
	0x2e: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_L},
	0x2f: {Op: OP_CMA},
	0x30: {Op: OP_UNDEFINED},
	0x31: {Op: OP_LXI, Shape: SHAPE_IMM16, Pair: PAIR_SP},
	0x32: {Op: OP_STA, Shape: SHAPE_IMM16},
	0x33: {Op: OP_INX, Pair: PAIR_SP},
	0x34: {Op: OP_INR, Dst: REG_M, Flags: FLAGS_ZSP},
	0x35: {Op: OP_DCR, Dst: REG_M, Flags: FLAGS_ZSP},
	0x36: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_M},
	0x37: {Op: OP_STC, Flags: FLAG_CARRY},
	0x38: {Op: OP_UNDEFINED},
	0x39: {Op: OP_DAD, Pair: PAIR_SP, Flags: FLAG_CARRY},
	0x3a: {Op: OP_LDA, Shape: SHAPE_IMM16},
	0x3b: {Op: OP_DCX, Pair: PAIR_SP},
	0x3c: {Op: OP_INR, Dst: REG_A, Flags: FLAGS_ZSP},
	0x3d: {Op: OP_DCR, Dst: REG_A, Flags: FLAGS_ZSP},
	0x3e: {Op: OP_MVI, Shape: SHAPE_IMM8, Dst: REG_A},
	0x3f: {Op: OP_CMC, Flags: FLAG_CARRY},
	0x40: {Op: OP_MOV, Dst: REG_B, Src: REG_B},
	0x41: {Op: OP_MOV, Dst: REG_B, Src: REG_C},
	0x42: {Op: OP_MOV, Dst: REG_B, Src: REG_D},
	0x43: {Op: OP_MOV, Dst: REG_B, Src: REG_E},
	0x44: {Op: OP_MOV, Dst: REG_B, Src: REG_H},
	0x45: {Op: OP_MOV, Dst: REG_B, Src: REG_L},
	0x46: {Op: OP_MOV, Dst: REG_B, Src: REG_M},
	0x47: {Op: OP_MOV, Dst: REG_B, Src: REG_A},
	0x48: {Op: OP_MOV, Dst: REG_C, Src: REG_B},
	0x49: {Op: OP_MOV, Dst: REG_C, Src: REG_C},
	0x4a: {Op: OP_MOV, Dst: REG_C, Src: REG_D},
	0x4b: {Op: OP_MOV, Dst: REG_C, Src: REG_E},
	0x4c: {Op: OP_MOV, Dst: REG_C, Src: REG_H},
	0x4d: {Op: OP_MOV, Dst: REG_C, Src: REG_L},
	0x4e: {Op: OP_MOV, Dst: REG_C, Src: REG_M},
	0x4f: {Op: OP_MOV, Dst: REG_C, Src: REG_A},
	0x50: {Op: OP_MOV, Dst: REG_D, Src: REG_B},
	0x51: {Op: OP_MOV, Dst: REG_D, Src: REG_C},
	0x52: {Op: OP_MOV, Dst: REG_D, Src: REG_D},
	0x53: {Op: OP_MOV, Dst: REG_D, Src: REG_E},
	0x54: {Op: OP_MOV, Dst: REG_D, Src: REG_H},
	0x55: {Op: OP_MOV, Dst: REG_D, Src: REG_L},
	0x56: {Op: OP_MOV, Dst: REG_D, Src: REG_M},
	0x57: {Op: OP_MOV, Dst: REG_D, Src: REG_A},
	0x58: {Op: OP_MOV, Dst: REG_E, Src: REG_B},
	0x59: {Op: OP_MOV, Dst: REG_E, Src: REG_C},
	0x5a: {Op: OP_MOV, Dst: REG_E, Src: REG_D},
	0x5b: {Op: OP_MOV, Dst: REG_E, Src: REG_E},
	0x5c: {Op: OP_MOV, Dst: REG_E, Src: REG_H},
	0x5d: {Op: OP_MOV, Dst: REG_E, Src: REG_L},
	0x5e: {Op: OP_MOV, Dst: REG_E, Src: REG_M},
	0x5f: {Op: OP_MOV, Dst: REG_E, Src: REG_A},
	0x60: {Op: OP_MOV, Dst: REG_H, Src: REG_B},
	0x61: {Op: OP_MOV, Dst: REG_H, Src: REG_C},
	0x62: {Op: OP_MOV, Dst: REG_H, Src: REG_D},
	0x63: {Op: OP_MOV, Dst: REG_H, Src: REG_E},
	0x64: {Op: OP_MOV, Dst: REG_H, Src: REG_H},
	0x65: {Op: OP_MOV, Dst: REG_H, Src: REG_L},
	0x66: {Op: OP_MOV, Dst: REG_H, Src: REG_M},
	0x67: {Op: OP_MOV, Dst: REG_H, Src: REG_A},
	0x68: {Op: OP_MOV, Dst: REG_L, Src: REG_B},
	0x69: {Op: OP_MOV, Dst: REG_L, Src: REG_C},
	0x6a: {Op: OP_MOV, Dst: REG_L, Src: REG_D},
	0x6b: {Op: OP_MOV, Dst: REG_L, Src: REG_E},
	0x6c: {Op: OP_MOV, Dst: REG_L, Src: REG_H},
	0x6d: {Op: OP_MOV, Dst: REG_L, Src: REG_L},
	0x6e: {Op: OP_MOV, Dst: REG_L, Src: REG_M},
	0x6f: {Op: OP_MOV, Dst: REG_L, Src: REG_A},
	0x70: {Op: OP_MOV, Dst: REG_M, Src: REG_B},
	0x71: {Op: OP_MOV, Dst: REG_M, Src: REG_C},
	0x72: {Op: OP_MOV, Dst: REG_M, Src: REG_D},
	0x73: {Op: OP_MOV, Dst: REG_M, Src: REG_E},
	0x74: {Op: OP_MOV, Dst: REG_M, Src: REG_H},
	0x75: {Op: OP_MOV, Dst: REG_M, Src: REG_L},
	0x76: {Op: OP_HLT},
	0x77: {Op: OP_MOV, Dst: REG_M, Src: REG_A},
	0x78: {Op: OP_MOV, Dst: REG_A, Src: REG_B},
	0x79: {Op: OP_MOV, Dst: REG_A, Src: REG_C},
	0x7a: {Op: OP_MOV, Dst: REG_A, Src: REG_D},
	0x7b: {Op: OP_MOV, Dst: REG_A, Src: REG_E},
	0x7c: {Op: OP_MOV, Dst: REG_A, Src: REG_H},
	0x7d: {Op: OP_MOV, Dst: REG_A, Src: REG_L},
	0x7e: {Op: OP_MOV, Dst: REG_A, Src: REG_M},
	0x7f: {Op: OP_MOV, Dst: REG_A, Src: REG_A},
	0x80: {Op: OP_ADD, Src: REG_B, Flags: FLAGS_ALL},
	0x81: {Op: OP_ADD, Src: REG_C, Flags: FLAGS_ALL},
	0x82: {Op: OP_ADD, Src: REG_D, Flags: FLAGS_ALL},
	0x83: {Op: OP_ADD, Src: REG_E, Flags: FLAGS_ALL},
	0x84: {Op: OP_ADD, Src: REG_H, Flags: FLAGS_ALL},
	0x85: {Op: OP_ADD, Src: REG_L, Flags: FLAGS_ALL},
	0x86: {Op: OP_ADD, Src: REG_M, Flags: FLAGS_ALL},
	0x87: {Op: OP_ADD, Src: REG_A, Flags: FLAGS_ALL},
	0x88: {Op: OP_ADC, Src: REG_B, Flags: FLAGS_ALL},
	0x89: {Op: OP_ADC, Src: REG_C, Flags: FLAGS_ALL},
	0x8a: {Op: OP_ADC, Src: REG_D, Flags: FLAGS_ALL},
	0x8b: {Op: OP_ADC, Src: REG_E, Flags: FLAGS_ALL},
	0x8c: {Op: OP_ADC, Src: REG_H, Flags: FLAGS_ALL},
	0x8d: {Op: OP_ADC, Src: REG_L, Flags: FLAGS_ALL},
	0x8e: {Op: OP_ADC, Src: REG_M, Flags: FLAGS_ALL},
	0x8f: {Op: OP_ADC, Src: REG_A, Flags: FLAGS_ALL},
	0x90: {Op: OP_SUB, Src: REG_B, Flags: FLAGS_ALL},
	0x91: {Op: OP_SUB, Src: REG_C, Flags: FLAGS_ALL},
	0x92: {Op: OP_SUB, Src: REG_D, Flags: FLAGS_ALL},
	0x93: {Op: OP_SUB, Src: REG_E, Flags: FLAGS_ALL},
	0x94: {Op: OP_SUB, Src: REG_H, Flags: FLAGS_ALL},
	0x95: {Op: OP_SUB, Src: REG_L, Flags: FLAGS_ALL},
	0x96: {Op: OP_SUB, Src: REG_M, Flags: FLAGS_ALL},
	0x97: {Op: OP_SUB, Src: REG_A, Flags: FLAGS_ALL},
	0x98: {Op: OP_SBB, Src: REG_B, Flags: FLAGS_ALL},
	0x99: {Op: OP_SBB, Src: REG_C, Flags: FLAGS_ALL},
	0x9a: {Op: OP_SBB, Src: REG_D, Flags: FLAGS_ALL},
	0x9b: {Op: OP_SBB, Src: REG_E, Flags: FLAGS_ALL},
	0x9c: {Op: OP_SBB, Src: REG_H, Flags: FLAGS_ALL},
	0x9d: {Op: OP_SBB, Src: REG_L, Flags: FLAGS_ALL},
	0x9e: {Op: OP_SBB, Src: REG_M, Flags: FLAGS_ALL},
	0x9f: {Op: OP_SBB, Src: REG_A, Flags: FLAGS_ALL},
	0xa0: {Op: OP_ANA, Src: REG_B, Flags: FLAGS_ALL},
	0xa1: {Op: OP_ANA, Src: REG_C, Flags: FLAGS_ALL},
	0xa2: {Op: OP_ANA, Src: REG_D, Flags: FLAGS_ALL},
	0xa3: {Op: OP_ANA, Src: REG_E, Flags: FLAGS_ALL},
	0xa4: {Op: OP_ANA, Src: REG_H, Flags: FLAGS_ALL},
	0xa5: {Op: OP_ANA, Src: REG_L, Flags: FLAGS_ALL},
	0xa6: {Op: OP_ANA, Src: REG_M, Flags: FLAGS_ALL},
	0xa7: {Op: OP_ANA, Src: REG_A, Flags: FLAGS_ALL},
	0xa8: {Op: OP_XRA, Src: REG_B, Flags: FLAGS_ALL},
	0xa9: {Op: OP_XRA, Src: REG_C, Flags: FLAGS_ALL},
	0xaa: {Op: OP_XRA, Src: REG_D, Flags: FLAGS_ALL},
	0xab: {Op: OP_XRA, Src: REG_E, Flags: FLAGS_ALL},
	0xac: {Op: OP_XRA, Src: REG_H, Flags: FLAGS_ALL},
	0xad: {Op: OP_XRA, Src: REG_L, Flags: FLAGS_ALL},
	0xae: {Op: OP_XRA, Src: REG_M, Flags: FLAGS_ALL},
	0xaf: {Op: OP_XRA, Src: REG_A, Flags: FLAGS_ALL},
	0xb0: {Op: OP_ORA, Src: REG_B, Flags: FLAGS_ALL},
	0xb1: {Op: OP_ORA, Src: REG_C, Flags: FLAGS_ALL},
	0xb2: {Op: OP_ORA, Src: REG_D, Flags: FLAGS_ALL},
	0xb3: {Op: OP_ORA, Src: REG_E, Flags: FLAGS_ALL},
	0xb4: {Op: OP_ORA, Src: REG_H, Flags: FLAGS_ALL},
	0xb5: {Op: OP_ORA, Src: REG_L, Flags: FLAGS_ALL},
	0xb6: {Op: OP_ORA, Src: REG_M, Flags: FLAGS_ALL},
	0xb7: {Op: OP_ORA, Src: REG_A, Flags: FLAGS_ALL},
	0xb8: {Op: OP_CMP, Src: REG_B, Flags: FLAGS_ALL},
	0xb9: {Op: OP_CMP, Src: REG_C, Flags: FLAGS_ALL},
	0xba: {Op: OP_CMP, Src: REG_D, Flags: FLAGS_ALL},
	0xbb: {Op: OP_CMP, Src: REG_E, Flags: FLAGS_ALL},
	0xbc: {Op: OP_CMP, Src: REG_H, Flags: FLAGS_ALL},
	0xbd: {Op: OP_CMP, Src: REG_L, Flags: FLAGS_ALL},
	0xbe: {Op: OP_CMP, Src: REG_M, Flags: FLAGS_ALL},
	0xbf: {Op: OP_CMP, Src: REG_A, Flags: FLAGS_ALL},
	0xc0: {Op: OP_RCOND, Cond: COND_NZ},
	0xc1: {Op: OP_POP, Pair: PAIR_B},
	0xc2: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_NZ},
	0xc3: {Op: OP_JMP, Shape: SHAPE_IMM16},
	0xc4: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_NZ},
	0xc5: {Op: OP_PUSH, Pair: PAIR_B},
	0xc6: {Op: OP_ADI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xc7: {Op: OP_RST, Vector: 0},
	0xc8: {Op: OP_RCOND, Cond: COND_Z},
	0xc9: {Op: OP_RET},
	0xca: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_Z},
	0xcb: {Op: OP_UNDEFINED},
	0xcc: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_Z},
	0xcd: {Op: OP_CALL, Shape: SHAPE_IMM16},
	0xce: {Op: OP_ACI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xcf: {Op: OP_RST, Vector: 1},
	0xd0: {Op: OP_RCOND, Cond: COND_NC},
	0xd1: {Op: OP_POP, Pair: PAIR_D},
	0xd2: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_NC},
	0xd3: {Op: OP_OUT, Shape: SHAPE_IMM8},
	0xd4: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_NC},
	0xd5: {Op: OP_PUSH, Pair: PAIR_D},
	0xd6: {Op: OP_SUI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xd7: {Op: OP_RST, Vector: 2},
	0xd8: {Op: OP_RCOND, Cond: COND_C},
	0xd9: {Op: OP_UNDEFINED},
	0xda: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_C},
	0xdb: {Op: OP_IN, Shape: SHAPE_IMM8},
	0xdc: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_C},
	0xdd: {Op: OP_UNDEFINED},
	0xde: {Op: OP_SBI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xdf: {Op: OP_RST, Vector: 3},
	0xe0: {Op: OP_RCOND, Cond: COND_PO},
	0xe1: {Op: OP_POP, Pair: PAIR_H},
	0xe2: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_PO},
	0xe3: {Op: OP_XTHL},
	0xe4: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_PO},
	0xe5: {Op: OP_PUSH, Pair: PAIR_H},
	0xe6: {Op: OP_ANI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xe7: {Op: OP_RST, Vector: 4},
	0xe8: {Op: OP_RCOND, Cond: COND_PE},
	0xe9: {Op: OP_PCHL},
	0xea: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_PE},
	0xeb: {Op: OP_XCHG},
	0xec: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_PE},
	0xed: {Op: OP_UNDEFINED},
	0xee: {Op: OP_XRI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xef: {Op: OP_RST, Vector: 5},
	0xf0: {Op: OP_RCOND, Cond: COND_P},
	0xf1: {Op: OP_POP, Pair: PAIR_PSW, Flags: FLAGS_ALL},
	0xf2: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_P},
	0xf3: {Op: OP_DI},
	0xf4: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_P},
	0xf5: {Op: OP_PUSH, Pair: PAIR_PSW},
	0xf6: {Op: OP_ORI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xf7: {Op: OP_RST, Vector: 6},
	0xf8: {Op: OP_RCOND, Cond: COND_M},
	0xf9: {Op: OP_SPHL},
	0xfa: {Op: OP_JCOND, Shape: SHAPE_IMM16, Cond: COND_M},
	0xfb: {Op: OP_EI},
	0xfc: {Op: OP_CCOND, Shape: SHAPE_IMM16, Cond: COND_M},
	0xfd: {Op: OP_UNDEFINED},
	0xfe: {Op: OP_CPI, Shape: SHAPE_IMM8, Flags: FLAGS_ALL},
	0xff: {Op: OP_RST, Vector: 7},
}
