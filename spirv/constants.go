package spirv

// Core opcode values for SPIR-V 1.x, grouped the way the Khronos
// registry groups them. Gaps in the numbering are reserved values;
// they have no constants here and Lookup treats them as unknown.

// Miscellaneous instructions.
const (
	OpNop   Op = 0
	OpUndef Op = 1
)

// Debug instructions.
const (
	OpSourceContinued Op = 2
	OpSource          Op = 3
	OpSourceExtension Op = 4
	OpName            Op = 5
	OpMemberName      Op = 6
	OpString          Op = 7
	OpLine            Op = 8
	OpNoLine          Op = 317
	OpModuleProcessed Op = 330
)

// Annotation instructions.
const (
	OpDecorate            Op = 71
	OpMemberDecorate      Op = 72
	OpDecorationGroup     Op = 73
	OpGroupDecorate       Op = 74
	OpGroupMemberDecorate Op = 75
)

// Extension instructions.
const (
	OpExtension     Op = 10
	OpExtInstImport Op = 11
	OpExtInst       Op = 12
)

// Mode-setting instructions.
const (
	OpMemoryModel   Op = 14
	OpEntryPoint    Op = 15
	OpExecutionMode Op = 16
	OpCapability    Op = 17
)

// Type-declaration instructions.
const (
	OpTypeVoid           Op = 19
	OpTypeBool           Op = 20
	OpTypeInt            Op = 21
	OpTypeFloat          Op = 22
	OpTypeVector         Op = 23
	OpTypeMatrix         Op = 24
	OpTypeImage          Op = 25
	OpTypeSampler        Op = 26
	OpTypeSampledImage   Op = 27
	OpTypeArray          Op = 28
	OpTypeRuntimeArray   Op = 29
	OpTypeStruct         Op = 30
	OpTypeOpaque         Op = 31
	OpTypePointer        Op = 32
	OpTypeFunction       Op = 33
	OpTypeEvent          Op = 34
	OpTypeDeviceEvent    Op = 35
	OpTypeReserveId      Op = 36
	OpTypeQueue          Op = 37
	OpTypePipe           Op = 38
	OpTypeForwardPointer Op = 39
	OpTypePipeStorage    Op = 322
	OpTypeNamedBarrier   Op = 327
)

// Constant-creation instructions.
const (
	OpConstantTrue          Op = 41
	OpConstantFalse         Op = 42
	OpConstant              Op = 43
	OpConstantComposite     Op = 44
	OpConstantSampler       Op = 45
	OpConstantNull          Op = 46
	OpSpecConstantTrue      Op = 48
	OpSpecConstantFalse     Op = 49
	OpSpecConstant          Op = 50
	OpSpecConstantComposite Op = 51
	OpSpecConstantOp        Op = 52
	OpConstantPipeStorage   Op = 323
)

// Function instructions.
const (
	OpFunction          Op = 54
	OpFunctionParameter Op = 55
	OpFunctionEnd       Op = 56
	OpFunctionCall      Op = 57
)

// Memory instructions.
const (
	OpVariable               Op = 59
	OpImageTexelPointer      Op = 60
	OpLoad                   Op = 61
	OpStore                  Op = 62
	OpCopyMemory             Op = 63
	OpCopyMemorySized        Op = 64
	OpAccessChain            Op = 65
	OpInBoundsAccessChain    Op = 66
	OpPtrAccessChain         Op = 67
	OpArrayLength            Op = 68
	OpGenericPtrMemSemantics Op = 69
	OpInBoundsPtrAccessChain Op = 70
)

// Image instructions.
const (
	OpSampledImage                         Op = 86
	OpImageSampleImplicitLod               Op = 87
	OpImageSampleExplicitLod               Op = 88
	OpImageSampleDrefImplicitLod           Op = 89
	OpImageSampleDrefExplicitLod           Op = 90
	OpImageSampleProjImplicitLod           Op = 91
	OpImageSampleProjExplicitLod           Op = 92
	OpImageSampleProjDrefImplicitLod       Op = 93
	OpImageSampleProjDrefExplicitLod       Op = 94
	OpImageFetch                           Op = 95
	OpImageGather                          Op = 96
	OpImageDrefGather                      Op = 97
	OpImageRead                            Op = 98
	OpImageWrite                           Op = 99
	OpImage                                Op = 100
	OpImageQueryFormat                     Op = 101
	OpImageQueryOrder                      Op = 102
	OpImageQuerySizeLod                    Op = 103
	OpImageQuerySize                       Op = 104
	OpImageQueryLod                        Op = 105
	OpImageQueryLevels                     Op = 106
	OpImageQuerySamples                    Op = 107
	OpImageSparseSampleImplicitLod         Op = 305
	OpImageSparseSampleExplicitLod         Op = 306
	OpImageSparseSampleDrefImplicitLod     Op = 307
	OpImageSparseSampleDrefExplicitLod     Op = 308
	OpImageSparseSampleProjImplicitLod     Op = 309
	OpImageSparseSampleProjExplicitLod     Op = 310
	OpImageSparseSampleProjDrefImplicitLod Op = 311
	OpImageSparseSampleProjDrefExplicitLod Op = 312
	OpImageSparseFetch                     Op = 313
	OpImageSparseGather                    Op = 314
	OpImageSparseDrefGather                Op = 315
	OpImageSparseTexelsResident            Op = 316
	OpImageSparseRead                      Op = 320
)

// Conversion instructions.
const (
	OpConvertFToU              Op = 109
	OpConvertFToS              Op = 110
	OpConvertSToF              Op = 111
	OpConvertUToF              Op = 112
	OpUConvert                 Op = 113
	OpSConvert                 Op = 114
	OpFConvert                 Op = 115
	OpQuantizeToF16            Op = 116
	OpConvertPtrToU            Op = 117
	OpSatConvertSToU           Op = 118
	OpSatConvertUToS           Op = 119
	OpConvertUToPtr            Op = 120
	OpPtrCastToGeneric         Op = 121
	OpGenericCastToPtr         Op = 122
	OpGenericCastToPtrExplicit Op = 123
	OpBitcast                  Op = 124
)

// Composite instructions.
const (
	OpVectorExtractDynamic Op = 77
	OpVectorInsertDynamic  Op = 78
	OpVectorShuffle        Op = 79
	OpCompositeConstruct   Op = 80
	OpCompositeExtract     Op = 81
	OpCompositeInsert      Op = 82
	OpCopyObject           Op = 83
	OpTranspose            Op = 84
)

// Arithmetic instructions.
const (
	OpSNegate           Op = 126
	OpFNegate           Op = 127
	OpIAdd              Op = 128
	OpFAdd              Op = 129
	OpISub              Op = 130
	OpFSub              Op = 131
	OpIMul              Op = 132
	OpFMul              Op = 133
	OpUDiv              Op = 134
	OpSDiv              Op = 135
	OpFDiv              Op = 136
	OpUMod              Op = 137
	OpSRem              Op = 138
	OpSMod              Op = 139
	OpFRem              Op = 140
	OpFMod              Op = 141
	OpVectorTimesScalar Op = 142
	OpMatrixTimesScalar Op = 143
	OpVectorTimesMatrix Op = 144
	OpMatrixTimesVector Op = 145
	OpMatrixTimesMatrix Op = 146
	OpOuterProduct      Op = 147
	OpDot               Op = 148
	OpIAddCarry         Op = 149
	OpISubBorrow        Op = 150
	OpUMulExtended      Op = 151
	OpSMulExtended      Op = 152
)

// Bit instructions.
const (
	OpShiftRightLogical    Op = 193
	OpShiftRightArithmetic Op = 194
	OpShiftLeftLogical     Op = 195
	OpBitwiseOr            Op = 196
	OpBitwiseXor           Op = 197
	OpBitwiseAnd           Op = 198
	OpNot                  Op = 199
	OpBitFieldInsert       Op = 200
	OpBitFieldSExtract     Op = 201
	OpBitFieldUExtract     Op = 202
	OpBitReverse           Op = 203
	OpBitCount             Op = 204
)

// Relational and logical instructions.
const (
	OpAny                    Op = 154
	OpAll                    Op = 155
	OpIsNan                  Op = 156
	OpIsInf                  Op = 157
	OpIsFinite               Op = 158
	OpIsNormal               Op = 159
	OpSignBitSet             Op = 160
	OpLessOrGreater          Op = 161
	OpOrdered                Op = 162
	OpUnordered              Op = 163
	OpLogicalEqual           Op = 164
	OpLogicalNotEqual        Op = 165
	OpLogicalOr              Op = 166
	OpLogicalAnd             Op = 167
	OpLogicalNot             Op = 168
	OpSelect                 Op = 169
	OpIEqual                 Op = 170
	OpINotEqual              Op = 171
	OpUGreaterThan           Op = 172
	OpSGreaterThan           Op = 173
	OpUGreaterThanEqual      Op = 174
	OpSGreaterThanEqual      Op = 175
	OpULessThan              Op = 176
	OpSLessThan              Op = 177
	OpULessThanEqual         Op = 178
	OpSLessThanEqual         Op = 179
	OpFOrdEqual              Op = 180
	OpFUnordEqual            Op = 181
	OpFOrdNotEqual           Op = 182
	OpFUnordNotEqual         Op = 183
	OpFOrdLessThan           Op = 184
	OpFUnordLessThan         Op = 185
	OpFOrdGreaterThan        Op = 186
	OpFUnordGreaterThan      Op = 187
	OpFOrdLessThanEqual      Op = 188
	OpFUnordLessThanEqual    Op = 189
	OpFOrdGreaterThanEqual   Op = 190
	OpFUnordGreaterThanEqual Op = 191
)

// Derivative instructions.
const (
	OpDPdx         Op = 206
	OpDPdy         Op = 207
	OpFwidth       Op = 208
	OpDPdxFine     Op = 209
	OpDPdyFine     Op = 210
	OpFwidthFine   Op = 211
	OpDPdxCoarse   Op = 212
	OpDPdyCoarse   Op = 213
	OpFwidthCoarse Op = 214
)

// Control-flow instructions.
const (
	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255
	OpLifetimeStart     Op = 256
	OpLifetimeStop      Op = 257
)

// Atomic instructions.
const (
	OpAtomicLoad                Op = 226
	OpAtomicStore               Op = 227
	OpAtomicExchange            Op = 228
	OpAtomicCompareExchange     Op = 229
	OpAtomicCompareExchangeWeak Op = 230
	OpAtomicIIncrement          Op = 231
	OpAtomicIDecrement          Op = 232
	OpAtomicIAdd                Op = 233
	OpAtomicISub                Op = 234
	OpAtomicSMin                Op = 235
	OpAtomicUMin                Op = 236
	OpAtomicSMax                Op = 237
	OpAtomicUMax                Op = 238
	OpAtomicAnd                 Op = 239
	OpAtomicOr                  Op = 240
	OpAtomicXor                 Op = 241
	OpAtomicFlagTestAndSet      Op = 318
	OpAtomicFlagClear           Op = 319
)

// Primitive instructions.
const (
	OpEmitVertex         Op = 217
	OpEndPrimitive       Op = 218
	OpEmitStreamVertex   Op = 219
	OpEndStreamPrimitive Op = 220
)

// Barrier instructions.
const (
	OpControlBarrier         Op = 223
	OpMemoryBarrier          Op = 224
	OpNamedBarrierInitialize Op = 328
	OpMemoryNamedBarrier     Op = 329
)

// Group instructions.
const (
	OpGroupAsyncCopy  Op = 259
	OpGroupWaitEvents Op = 260
	OpGroupAll        Op = 261
	OpGroupAny        Op = 262
	OpGroupBroadcast  Op = 263
	OpGroupIAdd       Op = 264
	OpGroupFAdd       Op = 265
	OpGroupFMin       Op = 266
	OpGroupUMin       Op = 267
	OpGroupSMin       Op = 268
	OpGroupFMax       Op = 269
	OpGroupUMax       Op = 270
	OpGroupSMax       Op = 271
)

// Device-side enqueue instructions.
const (
	OpEnqueueMarker                           Op = 291
	OpEnqueueKernel                           Op = 292
	OpGetKernelNDrangeSubGroupCount           Op = 293
	OpGetKernelNDrangeMaxSubGroupSize         Op = 294
	OpGetKernelWorkGroupSize                  Op = 295
	OpGetKernelPreferredWorkGroupSizeMultiple Op = 296
	OpRetainEvent                             Op = 297
	OpReleaseEvent                            Op = 298
	OpCreateUserEvent                         Op = 299
	OpIsValidEvent                            Op = 300
	OpSetUserEventStatus                      Op = 301
	OpCaptureEventProfilingInfo               Op = 302
	OpGetDefaultQueue                         Op = 303
	OpBuildNDRange                            Op = 304
	OpGetKernelLocalSizeForSubgroupCount      Op = 325
	OpGetKernelMaxNumSubgroups                Op = 326
)

// Pipe instructions.
const (
	OpReadPipe                     Op = 274
	OpWritePipe                    Op = 275
	OpReservedReadPipe             Op = 276
	OpReservedWritePipe            Op = 277
	OpReserveReadPipePackets       Op = 278
	OpReserveWritePipePackets      Op = 279
	OpCommitReadPipe               Op = 280
	OpCommitWritePipe              Op = 281
	OpIsValidReserveId             Op = 282
	OpGetNumPipePackets            Op = 283
	OpGetMaxPipePackets            Op = 284
	OpGroupReserveReadPipePackets  Op = 285
	OpGroupReserveWritePipePackets Op = 286
	OpGroupCommitReadPipe          Op = 287
	OpGroupCommitWritePipe         Op = 288
	OpCreatePipeFromPipeStorage    Op = 324
)

// Miscellaneous instructions added after the 1.0 core set.
const (
	OpSizeOf Op = 321
)
