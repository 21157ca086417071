package script

// DemoScript walks through every list operation and checks the results as it
// goes.
const DemoScript = `
name: demo
description: Push, pop, positional insert and erase, copy and swap.
lists:
  - name: numbers
  - name: letters
    values: ["a", "b", "c"]
  - name: blanks
    sized: 2

steps:

  - name: push three
    list: numbers
    pushFront: "1"
  - list: numbers
    pushFront: "2"
  - list: numbers
    pushFront: "3"
  - name: pushed in reverse
    list: numbers
    expect:
      values: ["3", "2", "1"]

  - name: pop the front
    list: numbers
    popFront: true
  - list: numbers
    expect:
      front: "2"
      size: 2

  - name: insert after a found element
    list: letters
    insertAfter:
      at: {find: "b"}
      value: "b2"
  - name: insert at end becomes front
    list: letters
    insertAfter:
      at: {end: true}
      value: "start"
  - list: letters
    expect:
      values: ["start", "a", "b", "b2", "c"]

  - name: erase after the second element
    list: letters
    eraseAfter:
      at: {index: 1}
  - name: erase after the last element is a no-op
    list: letters
    eraseAfter:
      at: {find: "c"}
  - list: letters
    expect:
      values: ["start", "a", "b2", "c"]
      missing: "b"

  - name: copies are independent
    list: letters
    copyTo: backup
  - list: backup
    popFront: true
  - list: letters
    expect:
      size: 4

  - name: swap
    list: numbers
    swapWith: blanks
  - list: numbers
    expect:
      values: ["", ""]
  - list: blanks
    setFront: "two"
  - list: blanks
    expect:
      values: ["two", "1"]

  - name: clear then pop fails
    list: numbers
    clear: true
  - list: numbers
    popFront: true
    expectError: empty
  - list: numbers
    eraseAfter:
      at: {begin: true}
    expectError: empty
  - list: numbers
    expect:
      empty: true
`
